package offer

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JSONMap is a jsonb column holding a free-form requirements payload
type JSONMap map[string]interface{}

// Value implements driver.Valuer
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}
	bytes, ok := src.([]byte)
	if !ok {
		return errors.New("offer: cannot scan jsonb column")
	}
	return json.Unmarshal(bytes, m)
}

// Offer is a third-party offer-wall record. TrueValue is the authoritative
// payout and must never reach a non-admin client; users see a disclosed
// percentage of it computed per account level.
type Offer struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	ExternalID   string         `db:"external_id" json:"external_id"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	TrueValue    float64        `db:"real_value" json:"real_value"`
	Currency     string         `db:"currency" json:"currency"`
	Countries    pq.StringArray `db:"countries" json:"countries"`
	DeviceTypes  pq.StringArray `db:"device_types" json:"device_types"`
	Category     string         `db:"category" json:"category"`
	ExternalURL  string         `db:"external_url" json:"external_url"`
	Requirements JSONMap        `db:"requirements" json:"requirements"`
	IsActive     bool           `db:"is_active" json:"is_active"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}
