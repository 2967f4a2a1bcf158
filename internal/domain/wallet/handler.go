package wallet

import (
	"net/http"
	"strconv"

	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/response"
)

// Handler handles wallet HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates wallet handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetBalance returns the caller's balance summary
// GET /wallet/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.service.GetSummary(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, summary)
}

// ListTransactions returns the caller's transaction history
// GET /wallet/transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	filter := &ListFilter{Limit: 50}
	if t := r.URL.Query().Get("type"); t != "" {
		filter.Type = TransactionType(t)
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	transactions, err := h.service.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	total, _ := h.service.CountTransactions(r.Context(), userID)

	response.WithMeta(w, transactions, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}
