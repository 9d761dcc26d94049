package store

import "errors"

// Sentinel errors returned by repository and photo store methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrItemNotFound is returned when an operation targets an item
	// identifier that does not exist in the store.
	ErrItemNotFound = errors.New("item was not found")

	// ErrDuplicateItemID is returned when an insert would reuse an existing
	// identifier. Identifiers are unique across the lifetime of the store.
	ErrDuplicateItemID = errors.New("item id already exists")

	// ErrPhotoNotFound is returned when a photo key has no corresponding
	// file in the photo store.
	ErrPhotoNotFound = errors.New("photo was not found")

	// ErrInvalidPhotoKey is returned when a supplied photo key fails
	// sanitization (empty, contains path separators, or attempts
	// traversal).
	ErrInvalidPhotoKey = errors.New("invalid photo key")

	// ErrSavingPhoto is returned when writing an uploaded photo to the
	// cache directory fails (disk full, permission denied). A record must
	// never be persisted referencing a key that failed to save.
	ErrSavingPhoto = errors.New("failed to save photo")
)

// Low-level storage operation errors. These are returned (or wrapped) when an
// I/O or SQL operation fails before any domain logic can be applied.
var (
	// ErrReadingDocument is returned when the file backend cannot read or
	// decode the items document.
	ErrReadingDocument = errors.New("failed to read items document")

	// ErrWritingDocument is returned when the file backend cannot rewrite
	// the items document durably.
	ErrWritingDocument = errors.New("failed to write items document")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan item row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan item rows")
)
