package submission

import (
	"time"

	"github.com/google/uuid"
)

// Review actions accepted by the admin review endpoint
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// CreateSubmissionRequest claims completion of a task
type CreateSubmissionRequest struct {
	TaskID uuid.UUID `json:"task_id" validate:"required"`
}

// ReviewRequest is the admin review decision
type ReviewRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Notes  string `json:"notes" validate:"max=1000"`
}

// SubmissionResponse is the user-facing view of a submission
type SubmissionResponse struct {
	ID         uuid.UUID  `json:"id"`
	TaskID     uuid.UUID  `json:"task_id"`
	Status     Status     `json:"status"`
	ProofURL   string     `json:"proof_url,omitempty"`
	AdminNotes string     `json:"admin_notes,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToResponse builds the user projection of a submission
func ToResponse(s *Submission) *SubmissionResponse {
	resp := &SubmissionResponse{
		ID:        s.ID,
		TaskID:    s.TaskID,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
	if s.ProofURL.Valid {
		resp.ProofURL = s.ProofURL.String
	}
	if s.AdminNotes.Valid {
		resp.AdminNotes = s.AdminNotes.String
	}
	if s.ReviewedAt.Valid {
		t := s.ReviewedAt.Time
		resp.ReviewedAt = &t
	}
	return resp
}

// AdminSubmissionResponse is the review-queue view with task and
// submitter context
type AdminSubmissionResponse struct {
	SubmissionResponse
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	UserFullName string    `json:"user_full_name"`
	TaskTitle    string    `json:"task_title"`
	TaskReward   float64   `json:"task_reward"`
}

// ToAdminResponse builds the admin projection of a submission detail
func ToAdminResponse(d *Detail) *AdminSubmissionResponse {
	return &AdminSubmissionResponse{
		SubmissionResponse: *ToResponse(&d.Submission),
		UserID:             d.UserID,
		UserEmail:          d.UserEmail,
		UserFullName:       d.UserFullName,
		TaskTitle:          d.TaskTitle,
		TaskReward:         d.TaskReward,
	}
}
