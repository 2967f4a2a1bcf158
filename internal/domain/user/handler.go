package user

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/validator"
)

// Handler handles user HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates user handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetMe returns the caller's profile
// GET /users/me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if err == ErrUserNotFound {
			response.NotFound(w, "User not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, profile)
}

// ListUsers lists users (admin only)
// GET /admin/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter := &ListFilter{Limit: 50}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = Status(status)
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	profiles, total, err := h.service.ListUsers(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.WithMeta(w, profiles, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Approve approves a pending account (admin only)
// POST /admin/users/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	profile, err := h.service.Approve(r.Context(), userID)
	if err != nil {
		switch err {
		case ErrUserNotFound:
			response.NotFound(w, "User not found")
		case ErrNotPending:
			response.Conflict(w, "Account is not pending approval")
		case ErrBonusNotPaid:
			response.Error(w, http.StatusInternalServerError, "BONUS_NOT_PAID",
				"Account approved but welcome bonus failed, manual reconciliation required")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, profile)
}

// Suspend suspends an account (admin only)
// POST /admin/users/{id}/suspend
func (h *Handler) Suspend(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	if err := h.service.Suspend(r.Context(), userID); err != nil {
		if err == ErrUserNotFound {
			response.NotFound(w, "User not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "User suspended"})
}

// SetLevel changes an account's tier (admin only)
// PUT /admin/users/{id}/level
func (h *Handler) SetLevel(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	var req SetLevelRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	if err := h.service.SetLevel(r.Context(), userID, req.Level); err != nil {
		switch err {
		case ErrUserNotFound:
			response.NotFound(w, "User not found")
		case ErrInvalidLevel:
			response.BadRequest(w, "Invalid level")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, map[string]string{"message": "Level updated"})
}
