package service

import (
	"context"
	"io"

	"github.com/davolkov/inventar/internal/store"
	"github.com/davolkov/inventar/models"
)

// mockItemRepository implements store.ItemRepository via function fields so
// each test can override exactly the calls it cares about.
type mockItemRepository struct {
	CreateFunc      func(ctx context.Context, item models.Item) (models.Item, error)
	ListFunc        func(ctx context.Context) ([]models.Item, error)
	GetFunc         func(ctx context.Context, id string) (models.Item, error)
	UpdateFunc      func(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)
	SetPhotoKeyFunc func(ctx context.Context, id string, photoKey string) (models.Item, error)
	DeleteFunc      func(ctx context.Context, id string) (models.Item, error)
}

func (m *mockItemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	return m.CreateFunc(ctx, item)
}

func (m *mockItemRepository) List(ctx context.Context) ([]models.Item, error) {
	return m.ListFunc(ctx)
}

func (m *mockItemRepository) Get(ctx context.Context, id string) (models.Item, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockItemRepository) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockItemRepository) SetPhotoKey(ctx context.Context, id string, photoKey string) (models.Item, error) {
	return m.SetPhotoKeyFunc(ctx, id, photoKey)
}

func (m *mockItemRepository) Delete(ctx context.Context, id string) (models.Item, error) {
	return m.DeleteFunc(ctx, id)
}

// mockPhotoStore implements store.PhotoStore via function fields.
type mockPhotoStore struct {
	SaveFunc     func(ctx context.Context, content io.Reader, ext string) (string, error)
	ReplaceFunc  func(ctx context.Context, oldKey string, content io.Reader, ext string) (string, error)
	DeleteFunc   func(ctx context.Context, key string) error
	OpenFunc     func(ctx context.Context, key string) (io.ReadCloser, error)
	SnapshotFunc func(ctx context.Context) ([]store.PhotoInfo, error)
}

func (m *mockPhotoStore) Save(ctx context.Context, content io.Reader, ext string) (string, error) {
	return m.SaveFunc(ctx, content, ext)
}

func (m *mockPhotoStore) Replace(ctx context.Context, oldKey string, content io.Reader, ext string) (string, error) {
	return m.ReplaceFunc(ctx, oldKey, content, ext)
}

func (m *mockPhotoStore) Delete(ctx context.Context, key string) error {
	return m.DeleteFunc(ctx, key)
}

func (m *mockPhotoStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return m.OpenFunc(ctx, key)
}

func (m *mockPhotoStore) Snapshot(ctx context.Context) ([]store.PhotoInfo, error) {
	return m.SnapshotFunc(ctx)
}
