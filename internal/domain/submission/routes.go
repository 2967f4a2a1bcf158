package submission

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns user-facing submission routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Post("/", h.Create)
	r.Get("/mine", h.ListMine)
	r.Post("/{id}/proof", h.UploadProof)

	return r
}

// AdminRoutes returns the admin review queue routes
func (h *Handler) AdminRoutes(authMiddleware, adminMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Use(adminMiddleware)

	r.Get("/", h.ListForReview)
	r.Post("/{id}/review", h.Review)

	return r
}
