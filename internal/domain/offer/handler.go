package offer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/database"
	"github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/validator"
)

// Handler handles offer HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates offer handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListForUser lists active offers with disclosed rewards
// GET /offers
func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	offers, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		if database.IsConnectivityError(err) {
			response.ServiceUnavailable(w)
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, offers)
}

// ListForAdmin lists all offers with true values (admin only)
// GET /admin/offers
func (h *Handler) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.ListAll(r.Context())
	if err != nil {
		if database.IsConnectivityError(err) {
			response.ServiceUnavailable(w)
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, offers)
}

// GetByID returns a full offer (admin only)
// GET /admin/offers/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid offer ID")
		return
	}

	offer, err := h.service.GetByID(r.Context(), offerID)
	if err != nil {
		if err == ErrOfferNotFound {
			response.NotFound(w, "Offer not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, offer)
}

// Create creates an offer (admin only)
// POST /admin/offers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	offer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if err == ErrInvalidValue {
			response.BadRequest(w, "Offer value must be positive")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.Created(w, offer)
}

// Update patches an offer (admin only)
// PATCH /admin/offers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid offer ID")
		return
	}

	var req UpdateOfferRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	offer, err := h.service.Update(r.Context(), offerID, &req)
	if err != nil {
		switch err {
		case ErrOfferNotFound:
			response.NotFound(w, "Offer not found")
		case ErrInvalidValue:
			response.BadRequest(w, "Offer value must be positive")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, offer)
}

// Delete removes an offer (admin only)
// DELETE /admin/offers/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	offerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid offer ID")
		return
	}

	if err := h.service.Delete(r.Context(), offerID); err != nil {
		if err == ErrOfferNotFound {
			response.NotFound(w, "Offer not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Offer deleted"})
}
