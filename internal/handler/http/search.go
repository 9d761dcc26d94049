package http

import (
	"encoding/json"
	"net/http"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/models"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.search").Msg("invalid JSON was passed")
		writeJSON(w, models.ErrorResponse{Error: "invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	item, err := h.services.Inventory.FindExact(r.Context(), req.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := toItemResponse(item)

	// read-time view transform on the returned copy only, never persisted
	if req.HasPhoto && item.HasPhoto() {
		resp.Description += " (photo: " + photoLocator(item.ID) + ")"
	}

	writeJSON(w, resp, http.StatusOK)
}
