package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns user-facing task routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Post("/from-offer", h.CreateFromOffer)
	r.Get("/mine", h.ListMine)
	r.Get("/{id}", h.GetByID)

	return r
}
