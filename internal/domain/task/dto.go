package task

import (
	"time"

	"github.com/google/uuid"
)

// CreateFromOfferRequest materializes a task from an offer-wall offer
type CreateFromOfferRequest struct {
	OfferID uuid.UUID `json:"offer_id" validate:"required"`
}

// UserTask is the end-user projection of a task. The requirements payload
// (which embeds the true value) is omitted by type, not by convention.
type UserTask struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	RewardAmount float64   `json:"reward_amount"`
	ExternalURL  string    `json:"external_url"`
	TotalSlots   int       `json:"total_slots"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToUserTask builds the user projection of a task
func ToUserTask(t *Task) *UserTask {
	return &UserTask{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Category:     t.Category,
		RewardAmount: t.RewardAmount,
		ExternalURL:  t.ExternalURL,
		TotalSlots:   t.TotalSlots,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt,
	}
}
