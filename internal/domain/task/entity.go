package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/domain/offer"
)

// Requirement keys embedded when a task is materialized from an offer.
// The true value lives only inside this payload, which is admin-visible;
// the user-facing projection never includes it.
const (
	ReqKeyOfferID         = "adgem_offer_id"
	ReqKeyTrueValue       = "real_value"
	ReqKeyLevelAtCreation = "user_level_at_creation"
)

// CategoryAdgem tags tasks materialized from the AdGem offer wall
const CategoryAdgem = "adgem"

// Status defines task lifecycle status
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Task is an internal work item derived from an offer. RewardAmount is the
// disclosed value shown to the user; the authoritative payout is embedded
// in Requirements for settlement.
type Task struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	Title        string        `db:"title" json:"title"`
	Description  string        `db:"description" json:"description"`
	Category     string        `db:"category" json:"category"`
	RewardAmount float64       `db:"reward_amount" json:"reward_amount"`
	ExternalURL  string        `db:"external_url" json:"external_url"`
	Requirements offer.JSONMap `db:"requirements" json:"requirements"`
	CreatedBy    uuid.UUID     `db:"created_by" json:"created_by"`
	TotalSlots   int           `db:"total_slots" json:"total_slots"`
	Status       Status        `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// TrueValue resolves the settlement amount: the embedded true value when
// recorded, otherwise the disclosed reward (legacy rows)
func (t *Task) TrueValue() float64 {
	if t.Requirements != nil {
		if v, ok := t.Requirements[ReqKeyTrueValue].(float64); ok && v > 0 {
			return v
		}
	}
	return t.RewardAmount
}
