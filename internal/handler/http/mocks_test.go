package http

import (
	"context"
	"io"

	"github.com/davolkov/inventar/internal/service"
	"github.com/davolkov/inventar/models"
)

// mockInventoryService implements service.InventoryService via function
// fields so each test overrides only the calls it expects.
type mockInventoryService struct {
	CreateFunc       func(ctx context.Context, name, description string, photo *models.PhotoUpload) (models.Item, error)
	ListFunc         func(ctx context.Context) ([]models.Item, error)
	GetFunc          func(ctx context.Context, id string) (models.Item, error)
	UpdateFunc       func(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error)
	ReplacePhotoFunc func(ctx context.Context, id string, photo *models.PhotoUpload) (models.Item, error)
	DeleteFunc       func(ctx context.Context, id string) error
	FindExactFunc    func(ctx context.Context, id string) (models.Item, error)
	OpenPhotoFunc    func(ctx context.Context, id string) (io.ReadCloser, error)
}

func (m *mockInventoryService) Create(ctx context.Context, name, description string, photo *models.PhotoUpload) (models.Item, error) {
	return m.CreateFunc(ctx, name, description, photo)
}

func (m *mockInventoryService) List(ctx context.Context) ([]models.Item, error) {
	return m.ListFunc(ctx)
}

func (m *mockInventoryService) Get(ctx context.Context, id string) (models.Item, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockInventoryService) Update(ctx context.Context, id string, patch models.ItemPatch) (models.Item, error) {
	return m.UpdateFunc(ctx, id, patch)
}

func (m *mockInventoryService) ReplacePhoto(ctx context.Context, id string, photo *models.PhotoUpload) (models.Item, error) {
	return m.ReplacePhotoFunc(ctx, id, photo)
}

func (m *mockInventoryService) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *mockInventoryService) FindExact(ctx context.Context, id string) (models.Item, error) {
	return m.FindExactFunc(ctx, id)
}

func (m *mockInventoryService) OpenPhoto(ctx context.Context, id string) (io.ReadCloser, error) {
	return m.OpenPhotoFunc(ctx, id)
}

type mockHealthService struct {
	PingFunc func(ctx context.Context) error
}

func (m *mockHealthService) Ping(ctx context.Context) error {
	if m.PingFunc == nil {
		return nil
	}
	return m.PingFunc(ctx)
}

func newTestServices(inventory *mockInventoryService) *service.Services {
	return &service.Services{
		Inventory: inventory,
		Health:    &mockHealthService{},
	}
}
