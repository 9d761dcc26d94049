package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davolkov/inventar/models"
)

// writeJSON serializes data and writes it with the given status code. If
// marshaling fails, it responds with 500 and returns a wrapped error.
func writeJSON(w http.ResponseWriter, data any, statusCode int) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonData)

	return nil
}

// photoLocator renders the externally dereferenceable photo reference for an
// item. The raw storage key never leaves the service.
func photoLocator(id string) string {
	return "/inventory/" + id + "/photo"
}

// toItemResponse converts an item into its external representation,
// replacing the raw photo key with a derived locator (nil when absent).
func toItemResponse(item models.Item) models.ItemResponse {
	resp := models.ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}

	if item.HasPhoto() {
		locator := photoLocator(item.ID)
		resp.PhotoURL = &locator
	}

	return resp
}

// responseWriter is a thin decorator around [http.ResponseWriter] that
// intercepts WriteHeader and Write calls to capture response metadata for
// the logging middleware.
//
// responseWriter ensures that WriteHeader is forwarded to the underlying
// writer exactly once: subsequent calls are silently ignored, mirroring the
// behaviour documented by the [http.ResponseWriter] interface.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	status int

	// wroteHeader guards against forwarding a second WriteHeader.
	wroteHeader bool

	// size is the running total of bytes written to the response body.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
