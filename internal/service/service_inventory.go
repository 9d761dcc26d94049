package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/store"
	"github.com/davolkov/inventar/models"
)

type inventoryService struct {
	items  store.ItemRepository
	photos store.PhotoStore

	logger *logger.Logger
}

// NewInventoryService constructs an [InventoryService] over the given item
// repository and photo store. The service is unaware of which repository
// backend is active.
func NewInventoryService(items store.ItemRepository, photos store.PhotoStore, logger *logger.Logger) InventoryService {
	return &inventoryService{
		items:  items,
		photos: photos,
		logger: logger,
	}
}

func (s *inventoryService) Create(ctx context.Context, name, description string, photo *models.PhotoUpload) (models.Item, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return models.Item{}, ErrEmptyItemName
	}

	item := models.Item{
		ID:          newItemID(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}

	// photo first: the record must never promise a photo that failed to save
	if photo != nil {
		key, err := s.photos.Save(ctx, photo.Content, photo.Ext)
		if err != nil {
			return models.Item{}, err
		}
		item.PhotoKey = key
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		// the record never existed; release the saved file rather than
		// leaving a guaranteed orphan
		if item.PhotoKey != "" {
			if delErr := s.photos.Delete(ctx, item.PhotoKey); delErr != nil {
				log.Warn().Err(delErr).
					Str("func", "inventoryService.Create").
					Str("photo_key", item.PhotoKey).
					Msg("failed to clean up photo of unpersisted item")
			}
		}
		return models.Item{}, err
	}

	log.Info().Str("func", "inventoryService.Create").Str("id", created.ID).Msg("item registered")
	return created, nil
}

func (s *inventoryService) List(ctx context.Context) ([]models.Item, error) {
	return s.items.List(ctx)
}

func (s *inventoryService) Get(ctx context.Context, id string) (models.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *inventoryService) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	return s.items.Update(ctx, id, patch)
}

func (s *inventoryService) ReplacePhoto(ctx context.Context, id string, photo *models.PhotoUpload) (models.Item, error) {
	log := logger.FromContext(ctx)

	if photo == nil {
		return models.Item{}, ErrNoPhotoProvided
	}

	// existence check before saving anything, so an unknown id cannot leak
	// an unreferenced file into the cache
	current, err := s.items.Get(ctx, id)
	if err != nil {
		return models.Item{}, err
	}

	newKey, err := s.photos.Replace(ctx, current.PhotoKey, photo.Content, photo.Ext)
	if err != nil {
		return models.Item{}, err
	}

	updated, err := s.items.SetPhotoKey(ctx, id, newKey)
	if err != nil {
		// record write failed after the file landed; release the new file
		if delErr := s.photos.Delete(ctx, newKey); delErr != nil {
			log.Warn().Err(delErr).
				Str("func", "inventoryService.ReplacePhoto").
				Str("photo_key", newKey).
				Msg("failed to clean up unreferenced photo")
		}
		return models.Item{}, err
	}

	log.Info().Str("func", "inventoryService.ReplacePhoto").Str("id", id).Str("photo_key", newKey).Msg("photo replaced")
	return updated, nil
}

func (s *inventoryService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	// record first: a half-failure must leave an orphan file, never a
	// record pointing at a deleted file
	removed, err := s.items.Delete(ctx, id)
	if err != nil {
		return err
	}

	if removed.PhotoKey != "" {
		if delErr := s.photos.Delete(ctx, removed.PhotoKey); delErr != nil {
			log.Warn().Err(delErr).
				Str("func", "inventoryService.Delete").
				Str("id", id).
				Str("photo_key", removed.PhotoKey).
				Msg("failed to delete photo of removed item, leaving orphan")
		}
	}

	log.Info().Str("func", "inventoryService.Delete").Str("id", id).Msg("item deleted")
	return nil
}

func (s *inventoryService) FindExact(ctx context.Context, id string) (models.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *inventoryService) OpenPhoto(ctx context.Context, id string) (io.ReadCloser, error) {
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !item.HasPhoto() {
		return nil, store.ErrPhotoNotFound
	}

	return s.photos.Open(ctx, item.PhotoKey)
}

// newItemID mints a time-ordered UUIDv7 identifier, falling back to a random
// UUIDv4 if the monotonic source is unavailable.
func newItemID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
