package store

import (
	"context"
	"io"
	"time"

	"github.com/davolkov/inventar/models"
)

// ItemRepository is the persistence contract for inventory item records.
// Two interchangeable implementations exist: a JSON-document file backend
// and a PostgreSQL backend. Both must expose identical externally observable
// behavior for every operation, including error conditions, so callers stay
// backend-agnostic.
//
// The repository stores records only; photo asset lifecycle is owned by
// [PhotoStore] and orchestrated one level up.
type ItemRepository interface {
	// Create persists a new item record. The caller supplies a minted,
	// unique identifier; [ErrDuplicateItemID] is returned if it is already
	// taken.
	Create(ctx context.Context, item models.Item) (models.Item, error)

	// List returns all stored items. Order is not meaningful.
	List(ctx context.Context) ([]models.Item, error)

	// Get returns the item with the given identifier or [ErrItemNotFound].
	Get(ctx context.Context, id string) (models.Item, error)

	// Update applies a partial patch: only non-empty patch fields overwrite
	// stored values. An empty patch is a persisted no-op (the backend may
	// skip the write entirely). Returns the updated item or
	// [ErrItemNotFound].
	Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)

	// SetPhotoKey replaces the stored photo reference of an item and
	// returns the updated record, or [ErrItemNotFound].
	SetPhotoKey(ctx context.Context, id string, photoKey string) (models.Item, error)

	// Delete removes the record and returns it as it was at removal time,
	// so the caller can release the associated photo asset. Returns
	// [ErrItemNotFound] if the identifier does not exist.
	Delete(ctx context.Context, id string) (models.Item, error)
}

// PhotoInfo describes one stored photo asset for maintenance tasks such as
// the orphan sweeper.
type PhotoInfo struct {
	Key     string
	ModTime time.Time
}

// PhotoStore manages binary photo files under a configured cache root.
// Keys are generated server-side and are never interpreted as paths; any key
// supplied from outside the store is sanitized before use.
type PhotoStore interface {
	// Save writes content under a newly generated collision-resistant key
	// derived from the current time, a random suffix and the sanitized
	// original extension. It never overwrites an existing key.
	Save(ctx context.Context, content io.Reader, originalExt string) (string, error)

	// Replace is Save followed by a best-effort delete of oldKey (when
	// non-empty). Failure to delete the old key is logged, not fatal; the
	// new key is still valid and returned.
	Replace(ctx context.Context, oldKey string, content io.Reader, originalExt string) (string, error)

	// Delete removes the file for key. A missing file is not an error.
	Delete(ctx context.Context, key string) error

	// Open returns a readable handle to the stored file or
	// [ErrPhotoNotFound].
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Snapshot lists all stored photo assets with their modification times.
	Snapshot(ctx context.Context) ([]PhotoInfo, error)
}
