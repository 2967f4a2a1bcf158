package auth

import (
	"net/http"

	"github.com/promohive/promohive-api/internal/domain/user"
	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/validator"
)

// Handler handles auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates auth handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register creates a new account
// POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	profile, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if err == ErrEmailTaken {
			response.Conflict(w, "Email is already registered")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.Created(w, profile)
}

// Login authenticates credentials and issues tokens
// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Unauthorized(w, "Invalid email or password")
		case ErrAccountSuspended:
			response.Forbidden(w, "Account is suspended")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// Refresh rotates a refresh token
// POST /auth/refresh
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	result, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch err {
		case ErrInvalidRefreshToken:
			response.Unauthorized(w, "Invalid or expired refresh token")
		case ErrAccountSuspended:
			response.Forbidden(w, "Account is suspended")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, result)
}

// Me returns the authenticated user's profile
// GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			response.NotFound(w, "User not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	response.OK(w, profile)
}
