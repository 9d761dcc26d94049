package service

import (
	"context"
	"io"

	"github.com/davolkov/inventar/models"
)

// InventoryService is the backend-agnostic contract over inventory items and
// their photo assets. It owns the ordering rules that keep an item's record
// and its on-disk photo consistent:
//
//   - Create saves the photo before persisting the record, so a record never
//     references a key that failed to save.
//   - ReplacePhoto checks the item exists before saving the new content, so
//     an unknown identifier never leaks an unreferenced file.
//   - Delete removes the record before releasing the file, so a half-failure
//     leaves an orphan file, never a record pointing at a deleted file.
type InventoryService interface {
	// Create registers a new item. The name is required; the photo is
	// optional. Returns [ErrEmptyItemName] when the name is missing.
	Create(ctx context.Context, name, description string, photo *models.PhotoUpload) (models.Item, error)

	// List returns all registered items.
	List(ctx context.Context) ([]models.Item, error)

	// Get returns the item with the given identifier.
	Get(ctx context.Context, id string) (models.Item, error)

	// Update applies a partial patch: only non-empty fields overwrite the
	// stored values.
	Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)

	// ReplacePhoto stores the new photo and releases the previous one.
	// Returns [ErrNoPhotoProvided] when photo is nil.
	ReplacePhoto(ctx context.Context, id string, photo *models.PhotoUpload) (models.Item, error)

	// Delete removes the item record and then its photo asset, if any.
	Delete(ctx context.Context, id string) error

	// FindExact is an exact-identifier lookup, kept as a distinct named
	// capability for the search endpoint.
	FindExact(ctx context.Context, id string) (models.Item, error)

	// OpenPhoto returns a readable handle to the item's photo content.
	OpenPhoto(ctx context.Context, id string) (io.ReadCloser, error)
}

// HealthService reports whether the backing store is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}
