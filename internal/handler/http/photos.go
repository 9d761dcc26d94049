package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/models"
)

func (h *Handler) getPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	content, err := h.services.Inventory.OpenPhoto(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, content); err != nil {
		// headers are already on the wire, only log
		log.Err(err).Str("func", "*Handler.getPhoto").Str("id", id).Msg("failed to stream photo content")
	}
}

func (h *Handler) replacePhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.replacePhoto").Msg("invalid multipart form")
		writeJSON(w, models.ErrorResponse{Error: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	photo, closePhoto, err := photoFromForm(r)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.replacePhoto").Msg("invalid photo upload")
		writeJSON(w, models.ErrorResponse{Error: "invalid photo upload"}, http.StatusBadRequest)
		return
	}
	defer closePhoto()

	item, err := h.services.Inventory.ReplacePhoto(r.Context(), id, photo)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, toItemResponse(item), http.StatusOK)
}
