package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/models"
)

// maxUploadMemory caps the multipart form size buffered in memory.
const maxUploadMemory = 32 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.register").Msg("invalid multipart form")
		writeJSON(w, models.ErrorResponse{Error: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	name := r.FormValue("inventory_name")
	description := r.FormValue("description")

	photo, closePhoto, err := photoFromForm(r)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.register").Msg("invalid photo upload")
		writeJSON(w, models.ErrorResponse{Error: "invalid photo upload"}, http.StatusBadRequest)
		return
	}
	defer closePhoto()

	item, err := h.services.Inventory.Create(r.Context(), name, description, photo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, toItemResponse(item), http.StatusCreated)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.Inventory.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	responses := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item))
	}

	writeJSON(w, responses, http.StatusOK)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.services.Inventory.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, toItemResponse(item), http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var req models.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.update").Msg("invalid JSON was passed")
		writeJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	item, err := h.services.Inventory.Update(r.Context(), id, models.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, toItemResponse(item), http.StatusOK)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.Inventory.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, models.DeleteResponse{ID: id, Deleted: true}, http.StatusOK)
}

// photoFromForm extracts the optional "photo" part of a parsed multipart
// form. Returns a nil upload when the part is absent. The returned closer is
// always safe to defer.
func photoFromForm(r *http.Request) (*models.PhotoUpload, func(), error) {
	file, header, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}

	upload := &models.PhotoUpload{
		Content: file,
		Ext:     filepath.Ext(header.Filename),
	}

	return upload, func() { file.Close() }, nil
}
