package wallet

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns wallet routes
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)

	r.Get("/balance", h.GetBalance)
	r.Get("/transactions", h.ListTransactions)

	return r
}
