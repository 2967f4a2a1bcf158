package offer

import (
	"time"

	"github.com/google/uuid"
)

// CreateOfferRequest creates an offer (admin)
type CreateOfferRequest struct {
	ExternalID   string                 `json:"external_id" validate:"required,max=255"`
	Title        string                 `json:"title" validate:"required,max=255"`
	Description  string                 `json:"description" validate:"max=2000"`
	TrueValue    float64                `json:"real_value" validate:"required,gt=0"`
	Currency     string                 `json:"currency" validate:"currency"`
	Countries    []string               `json:"countries"`
	DeviceTypes  []string               `json:"device_types" validate:"dive,device_type"`
	Category     string                 `json:"category" validate:"max=100"`
	ExternalURL  string                 `json:"external_url" validate:"required,url"`
	Requirements map[string]interface{} `json:"requirements"`
	IsActive     *bool                  `json:"is_active"`
}

// UpdateOfferRequest patches an offer (admin)
type UpdateOfferRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	TrueValue   *float64 `json:"real_value,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	ExternalURL *string  `json:"external_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

// UserOffer is the end-user projection of an offer. It is a distinct type
// so the true value is omitted by construction, not by convention.
type UserOffer struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	DisplayReward float64   `json:"display_reward"`
	Currency      string    `json:"currency"`
	Countries     []string  `json:"countries"`
	DeviceTypes   []string  `json:"device_types"`
	Category      string    `json:"category"`
	ExternalURL   string    `json:"external_url"`
	UserLevel     int       `json:"user_level"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewUserOffer builds the user projection with the disclosed reward
func NewUserOffer(o *Offer, level int, disclosed float64) *UserOffer {
	return &UserOffer{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		DisplayReward: disclosed,
		Currency:      o.Currency,
		Countries:     o.Countries,
		DeviceTypes:   o.DeviceTypes,
		Category:      o.Category,
		ExternalURL:   o.ExternalURL,
		UserLevel:     level,
		CreatedAt:     o.CreatedAt,
	}
}
