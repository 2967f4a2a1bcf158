package submission

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/domain/offer"
	"github.com/promohive/promohive-api/internal/domain/task"
)

// Status defines submission review status
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Submission is a user's claim of task completion awaiting review
type Submission struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	TaskID     uuid.UUID      `db:"task_id" json:"task_id"`
	UserID     uuid.UUID      `db:"user_id" json:"user_id"`
	Status     Status         `db:"status" json:"status"`
	ProofURL   sql.NullString `db:"proof_url" json:"-"`
	AdminNotes sql.NullString `db:"admin_notes" json:"-"`
	ReviewedBy uuid.NullUUID  `db:"reviewed_by" json:"-"`
	ReviewedAt sql.NullTime   `db:"reviewed_at" json:"-"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// IsReviewed reports whether the submission reached a terminal status
func (s *Submission) IsReviewed() bool {
	return s.Status != StatusPending
}

// Detail is a submission joined with the task and submitter needed for
// review and settlement
type Detail struct {
	Submission
	TaskTitle        string        `db:"task_title"`
	TaskReward       float64       `db:"task_reward"`
	TaskRequirements offer.JSONMap `db:"task_requirements"`
	UserEmail        string        `db:"user_email"`
	UserFullName     string        `db:"user_full_name"`
}

// TrueValue resolves the settlement amount from the task requirements
// payload, falling back to the disclosed reward
func (d *Detail) TrueValue() float64 {
	if d.TaskRequirements != nil {
		if v, ok := d.TaskRequirements[task.ReqKeyTrueValue].(float64); ok && v > 0 {
			return v
		}
	}
	return d.TaskReward
}
