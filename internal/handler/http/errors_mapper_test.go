package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davolkov/inventar/internal/service"
	"github.com/davolkov/inventar/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty name", service.ErrEmptyItemName, http.StatusBadRequest},
		{"no photo provided", service.ErrNoPhotoProvided, http.StatusBadRequest},
		{"item not found", store.ErrItemNotFound, http.StatusNotFound},
		{"photo not found", store.ErrPhotoNotFound, http.StatusNotFound},
		{"duplicate id", store.ErrDuplicateItemID, http.StatusInternalServerError},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrItemNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestCategoryMessage(t *testing.T) {
	// internal detail is always collapsed to the category message
	wrapped := fmt.Errorf("%w: dial tcp: connection refused", store.ErrExecutingQuery)
	assert.Equal(t, "internal storage error", categoryMessage(wrapped, http.StatusInternalServerError))

	// client errors surface the sentinel text
	assert.Equal(t, store.ErrItemNotFound.Error(), categoryMessage(store.ErrItemNotFound, http.StatusNotFound))
	assert.Equal(t, service.ErrEmptyItemName.Error(), categoryMessage(service.ErrEmptyItemName, http.StatusBadRequest))
}
