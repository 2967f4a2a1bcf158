package submission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/domain/task"
	"github.com/promohive/promohive-api/internal/middleware"
	"github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/validator"
)

// Handler handles submission HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates submission handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create claims completion of a task
// POST /submissions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateSubmissionRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	sub, err := h.service.Submit(r.Context(), userID, req.TaskID)
	if err != nil {
		switch err {
		case task.ErrTaskNotFound:
			response.NotFound(w, "Task not found")
		case ErrAlreadySubmitted:
			response.Conflict(w, "Task already has a pending submission")
		default:
			response.InternalError(w)
		}
		return
	}

	response.Created(w, ToResponse(sub))
}

// UploadProof attaches a proof screenshot to a pending submission
// POST /submissions/{id}/proof
func (h *Handler) UploadProof(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	submissionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid submission ID")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxProofSize)
	if err := r.ParseMultipartForm(MaxProofSize); err != nil {
		response.BadRequest(w, "Proof file is too large or malformed")
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		response.BadRequest(w, "Missing proof file")
		return
	}
	defer file.Close()

	sub, err := h.service.AttachProof(r.Context(), userID, submissionID, file, header.Header.Get("Content-Type"))
	if err != nil {
		switch err {
		case ErrSubmissionNotFound, ErrNotOwner:
			response.NotFound(w, "Submission not found")
		case ErrInvalidProofType:
			response.BadRequest(w, "Proof must be a JPEG, PNG or WebP image")
		case ErrAlreadyReviewed:
			response.Conflict(w, "Submission has already been reviewed")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ToResponse(sub))
}

// ListMine lists the current user's submissions
// GET /submissions/mine
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	subs, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		response.InternalError(w)
		return
	}

	result := make([]*SubmissionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, ToResponse(sub))
	}

	response.OK(w, result)
}

// ListForReview lists the review queue (admin only)
// GET /admin/submissions?status=pending&limit=&offset=
func (h *Handler) ListForReview(w http.ResponseWriter, r *http.Request) {
	filter := &ListFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		switch Status(status) {
		case StatusPending, StatusApproved, StatusRejected:
			filter.Status = Status(status)
		default:
			response.BadRequest(w, "Invalid status filter")
			return
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil {
			filter.Limit = v
		}
	}
	if offset := r.URL.Query().Get("offset"); offset != "" {
		if v, err := strconv.Atoi(offset); err == nil {
			filter.Offset = v
		}
	}

	details, total, err := h.service.ListForReview(r.Context(), filter)
	if err != nil {
		response.InternalError(w)
		return
	}

	result := make([]*AdminSubmissionResponse, 0, len(details))
	for _, d := range details {
		result = append(result, ToAdminResponse(d))
	}

	response.WithMeta(w, result, response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// Review settles a pending submission (admin only)
// POST /admin/submissions/{id}/review
func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID := middleware.GetUserID(r.Context())

	submissionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid submission ID")
		return
	}

	var req ReviewRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	detail, err := h.service.Review(r.Context(), reviewerID, submissionID, req.Action, req.Notes)
	if err != nil {
		switch {
		case err == ErrSubmissionNotFound:
			response.NotFound(w, "Submission not found")
		case err == ErrAlreadyReviewed:
			response.Conflict(w, "Submission has already been reviewed")
		case err == ErrInvalidAction:
			response.BadRequest(w, "Action must be approve or reject")
		case errors.Is(err, ErrSettlementIncomplete):
			// the review stuck; only the payout needs operator attention
			response.Error(w, http.StatusInternalServerError, "SETTLEMENT_INCOMPLETE",
				"Submission approved but payout failed, manual reconciliation required")
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, ToAdminResponse(detail))
}
