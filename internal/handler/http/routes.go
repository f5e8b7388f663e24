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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/params", h.params)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/vault/status", h.vaultStatus)
		r.Get("/api/vault", h.getVault)
		r.Post("/api/vault", h.postVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
