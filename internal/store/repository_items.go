package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/models"
)

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository]. It executes all item CRUD operations directly against
// the "items" table using the embedded [*DB] connection, one parameterized
// statement per operation.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	created, err := r.scanItem(r.DB.QueryRowContext(ctx, insertItem,
		item.ID,
		item.Name,
		item.Description,
		nullablePhotoKey(item.PhotoKey),
		item.CreatedAt,
	))
	if err != nil {
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			log.Error().Str("func", "itemRepository.Create").Str("id", item.ID).Msg("identifier already taken")
			return models.Item{}, ErrDuplicateItemID
		}

		log.Err(err).Str("func", "itemRepository.Create").Str("id", item.ID).Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "itemRepository.Create").Str("id", created.ID).Msg("item persisted")
	return created, nil
}

func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listItems)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)

	for rows.Next() {
		var item models.Item
		var photoKey sql.NullString

		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&photoKey,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.List").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		item.PhotoKey = photoKey.String
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *itemRepository) Get(ctx context.Context, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := r.scanItem(r.DB.QueryRowContext(ctx, getItem, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Get").Str("id", id).Msg("failed to query item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	log := logger.FromContext(ctx)

	// nothing to patch: an empty update is a persisted no-op, skip the write
	if patch.Empty() {
		return r.Get(ctx, id)
	}

	query, args, err := buildUpdateItemQuery(id, patch)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Str("id", id).Msg("failed to build update query")
		return models.Item{}, err
	}

	item, err := r.scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "itemRepository.Update").Str("id", id).Msg("item not found")
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Update").Str("id", id).Msg("failed to execute update query")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "itemRepository.Update").Str("id", id).Msg("item updated")
	return item, nil
}

func (r *itemRepository) SetPhotoKey(ctx context.Context, id string, photoKey string) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := r.scanItem(r.DB.QueryRowContext(ctx, setItemPhotoKey, nullablePhotoKey(photoKey), id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "itemRepository.SetPhotoKey").Str("id", id).Msg("item not found")
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.SetPhotoKey").Str("id", id).Msg("failed to update photo reference")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "itemRepository.SetPhotoKey").Str("id", id).Str("photo_key", photoKey).Msg("photo reference updated")
	return item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := r.scanItem(r.DB.QueryRowContext(ctx, deleteItem, id))
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn().Str("func", "itemRepository.Delete").Str("id", id).Msg("item not found")
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Str("id", id).Msg("failed to delete item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "itemRepository.Delete").Str("id", id).Msg("item removed")
	return item, nil
}

// scanItem scans one item row, mapping the nullable photo_key column onto
// the empty string. The raw scan error is returned so callers can match
// sql.ErrNoRows before wrapping.
func (r *itemRepository) scanItem(row *sql.Row) (models.Item, error) {
	var item models.Item
	var photoKey sql.NullString

	if err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&photoKey,
		&item.CreatedAt,
	); err != nil {
		return models.Item{}, err
	}

	item.PhotoKey = photoKey.String
	return item, nil
}

// nullablePhotoKey maps the empty "no photo" key onto SQL NULL.
func nullablePhotoKey(key string) sql.NullString {
	return sql.NullString{String: key, Valid: key != ""}
}

// postgresErrorCode extracts the SQLSTATE code from a pgx driver error, or
// returns an empty string for non-postgres errors.
func postgresErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
