package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/ping", h.ping)

	router.Post("/register", h.register)
	router.Post("/search", h.search)

	router.Route("/inventory", func(r chi.Router) {
		r.Get("/", h.list)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.remove)

			r.Get("/photo", h.getPhoto)
			r.Put("/photo", h.replacePhoto)
		})
	})

	return router
}
