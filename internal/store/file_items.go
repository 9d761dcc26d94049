package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/models"
)

// itemsDocument is the on-disk layout of the file backend: the whole
// collection lives in a single JSON document and is rewritten wholesale on
// every mutation.
type itemsDocument struct {
	Items []models.Item `json:"items"`
}

// fileItemRepository is the JSON-document implementation of
// [ItemRepository]. Acceptable for small collections; every mutation runs a
// read-modify-rewrite cycle guarded by a mutex so concurrent in-process
// writers cannot lose updates. The rewrite goes through a temp file in the
// same directory followed by an atomic rename, so a crash mid-write leaves
// the previous document intact.
type fileItemRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileItemRepository constructs the file backend persisting into the
// document at path. The parent directory is created if needed; a missing
// document reads as an empty collection.
func NewFileItemRepository(path string, log *logger.Logger) (ItemRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).Str("func", "NewFileItemRepository").Str("path", path).Msg("failed to create items document directory")
			return nil, fmt.Errorf("creating items document directory: %w", err)
		}
	}

	return &fileItemRepository{
		path:   path,
		logger: log,
	}, nil
}

func (f *fileItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return models.Item{}, err
	}

	for _, existing := range doc.Items {
		if existing.ID == item.ID {
			log.Error().Str("func", "fileItemRepository.Create").Str("id", item.ID).Msg("identifier already taken")
			return models.Item{}, ErrDuplicateItemID
		}
	}

	doc.Items = append(doc.Items, item)

	if err := f.persist(doc); err != nil {
		return models.Item{}, err
	}

	log.Debug().Str("func", "fileItemRepository.Create").Str("id", item.ID).Msg("item persisted")
	return item, nil
}

func (f *fileItemRepository) List(ctx context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, len(doc.Items))
	copy(items, doc.Items)

	return items, nil
}

func (f *fileItemRepository) Get(ctx context.Context, id string) (models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return models.Item{}, err
	}

	for _, item := range doc.Items {
		if item.ID == id {
			return item, nil
		}
	}

	return models.Item{}, ErrItemNotFound
}

func (f *fileItemRepository) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return models.Item{}, err
	}

	for i, item := range doc.Items {
		if item.ID != id {
			continue
		}

		// empty patch: skip the rewrite, the stored state is already final
		if patch.Empty() {
			return item, nil
		}

		doc.Items[i] = patch.Apply(item)

		if err := f.persist(doc); err != nil {
			return models.Item{}, err
		}

		log.Debug().Str("func", "fileItemRepository.Update").Str("id", id).Msg("item updated")
		return doc.Items[i], nil
	}

	return models.Item{}, ErrItemNotFound
}

func (f *fileItemRepository) SetPhotoKey(ctx context.Context, id string, photoKey string) (models.Item, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return models.Item{}, err
	}

	for i, item := range doc.Items {
		if item.ID != id {
			continue
		}

		doc.Items[i].PhotoKey = photoKey

		if err := f.persist(doc); err != nil {
			return models.Item{}, err
		}

		log.Debug().Str("func", "fileItemRepository.SetPhotoKey").Str("id", id).Str("photo_key", photoKey).Msg("photo reference updated")
		return doc.Items[i], nil
	}

	return models.Item{}, ErrItemNotFound
}

func (f *fileItemRepository) Delete(ctx context.Context, id string) (models.Item, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return models.Item{}, err
	}

	for i, item := range doc.Items {
		if item.ID != id {
			continue
		}

		doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)

		if err := f.persist(doc); err != nil {
			return models.Item{}, err
		}

		log.Debug().Str("func", "fileItemRepository.Delete").Str("id", id).Msg("item removed")
		return item, nil
	}

	return models.Item{}, ErrItemNotFound
}

// load reads and decodes the whole document. A document that does not exist
// yet reads as an empty collection. Callers must hold the mutex.
func (f *fileItemRepository) load() (*itemsDocument, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &itemsDocument{}, nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileItemRepository.load").Str("path", f.path).Msg("failed to read items document")
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	var doc itemsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		f.logger.Err(err).Str("func", "fileItemRepository.load").Str("path", f.path).Msg("items document is corrupted")
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	return &doc, nil
}

// persist rewrites the whole document through a temp file and an atomic
// rename. Callers must hold the mutex.
func (f *fileItemRepository) persist(doc *itemsDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".items-*.json")
	if err != nil {
		f.logger.Err(err).Str("func", "fileItemRepository.persist").Str("path", f.path).Msg("failed to create temp document")
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		f.logger.Err(err).Str("func", "fileItemRepository.persist").Str("path", f.path).Msg("failed to write temp document")
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		f.logger.Err(err).Str("func", "fileItemRepository.persist").Str("path", f.path).Msg("failed to replace items document")
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	return nil
}
