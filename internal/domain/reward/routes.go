package reward

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AdminRoutes returns admin-only reward config routes
func (h *Handler) AdminRoutes(authMiddleware, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(adminMiddleware)

	r.Get("/levels", h.GetConfig)
	r.Put("/levels", h.UpdateConfig)

	return r
}
