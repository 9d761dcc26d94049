package service

import (
	"context"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/store"
)

type Services struct {
	Inventory InventoryService
	Health    HealthService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		Inventory: NewInventoryService(storages.Items, storages.Photos, logger),
		Health:    &healthService{storages: storages},
	}
}

type healthService struct {
	storages *store.Storages
}

func (h *healthService) Ping(ctx context.Context) error {
	return h.storages.Ping(ctx)
}
