package store

import (
	"context"
	"fmt"

	"github.com/davolkov/inventar/internal/config"
	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/migrations"
)

// Storages aggregates the process-wide storage handles: the item repository
// (file or postgres, selected by configuration) and the photo store. Both
// are created once at startup and passed explicitly into the services.
type Storages struct {
	Items  ItemRepository
	Photos PhotoStore

	db *DB // nil when the file backend is active
}

// NewStorages builds all storage handles for the configured backend. For the
// postgres backend it also runs pending schema migrations.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	photos, err := NewPhotoStore(cfg.Files.PhotoDir, log)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		if err := migrations.Migrate(db.DB); err != nil {
			db.Close()
			return nil, err
		}

		return &Storages{
			Items:  NewItemRepository(db, log),
			Photos: photos,
			db:     db,
		}, nil

	case config.BackendFile:
		items, err := NewFileItemRepository(cfg.Files.ItemsFile, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			Items:  items,
			Photos: photos,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Ping reports whether the backing store is reachable. The file backend has
// no remote dependency and always reports healthy.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool, if one was opened.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
