package http

import (
	"errors"
	"net/http"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/service"
	"github.com/davolkov/inventar/internal/store"
	"github.com/davolkov/inventar/models"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyItemName:   http.StatusBadRequest,
	service.ErrNoPhotoProvided: http.StatusBadRequest,

	store.ErrItemNotFound:  http.StatusNotFound,
	store.ErrPhotoNotFound: http.StatusNotFound,

	store.ErrDuplicateItemID: http.StatusInternalServerError,
	store.ErrInvalidPhotoKey: http.StatusInternalServerError,
	store.ErrSavingPhoto:     http.StatusInternalServerError,

	store.ErrReadingDocument:  http.StatusInternalServerError,
	store.ErrWritingDocument:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// categoryMessage returns the category-level message for a failure: the
// matched sentinel text for client errors, a fixed message for everything
// else. Internal error detail never reaches the response body.
func categoryMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "internal storage error"
	}

	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return http.StatusText(status)
}

// writeError maps err to a status code and writes the category message body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, models.ErrorResponse{Error: categoryMessage(err, status)}, status)
}
