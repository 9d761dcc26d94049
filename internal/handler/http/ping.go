package http

import (
	"net/http"

	"github.com/davolkov/inventar/internal/logger"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Health.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.ping").Msg("storage is not reachable")
		http.Error(w, "storage is not reachable", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
