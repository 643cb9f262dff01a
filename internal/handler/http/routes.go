package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging, withGZip)

	router.Group(func(r chi.Router) {
		r.Use(h.apiEnabled)

		// routes without authorization
		r.Get("/api/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/api/sync/schemas", h.getSchemas)
			r.Post("/api/{resource}/syncdata2", h.syncData)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
