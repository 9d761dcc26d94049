package handler

import (
	"github.com/davolkov/inventar/internal/handler/http"
	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/service"
)

// Handlers aggregates all transport handlers of the application. Only HTTP
// is served today; the aggregate keeps wiring in one place.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
