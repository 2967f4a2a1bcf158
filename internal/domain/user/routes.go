package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns user-facing routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/me", h.GetMe)

	return r
}

// AdminRoutes returns admin-only user management routes
func (h *Handler) AdminRoutes(authMiddleware, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(adminMiddleware)

	r.Get("/", h.ListUsers)
	r.Post("/{id}/approve", h.Approve)
	r.Post("/{id}/suspend", h.Suspend)
	r.Put("/{id}/level", h.SetLevel)

	return r
}
