package task

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/database"
	"github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/validator"
)

// Handler handles task HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates task handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateFromOffer creates a task from an active offer
// POST /tasks/from-offer
func (h *Handler) CreateFromOffer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateFromOfferRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	t, err := h.service.CreateFromOffer(r.Context(), userID, req.OfferID)
	if err != nil {
		switch err {
		case ErrOfferNotFound:
			response.NotFound(w, "Offer not found")
		case ErrOfferInactive:
			response.Conflict(w, "Offer is no longer active")
		default:
			if database.IsConnectivityError(err) {
				response.ServiceUnavailable(w)
			} else {
				response.InternalError(w)
			}
		}
		return
	}

	response.Created(w, ToUserTask(t))
}

// ListMine lists tasks created by the current user
// GET /tasks/mine
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	tasks, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	result := make([]*UserTask, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, ToUserTask(t))
	}

	response.OK(w, result)
}

// GetByID returns a task owned by the current user
// GET /tasks/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	taskID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid task ID")
		return
	}

	t, err := h.service.GetTask(r.Context(), taskID)
	if err != nil {
		if err == ErrTaskNotFound {
			response.NotFound(w, "Task not found")
		} else {
			response.InternalError(w)
		}
		return
	}

	if t.CreatedBy != userID {
		response.NotFound(w, "Task not found")
		return
	}

	response.OK(w, ToUserTask(t))
}
