package wallet

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// TransactionType defines supported ledger transaction types
type TransactionType string

const (
	TransactionTypeEarning    TransactionType = "earning"
	TransactionTypeBonus      TransactionType = "bonus"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus represents the state of a ledger entry
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger row. Rows are never updated or
// deleted after creation.
type Transaction struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	UserID        uuid.UUID         `db:"user_id" json:"user_id"`
	Type          TransactionType   `db:"type" json:"type"`
	Amount        float64           `db:"amount" json:"amount"`
	Description   string            `db:"description" json:"description"`
	Status        TransactionStatus `db:"status" json:"status"`
	ReferenceType sql.NullString    `db:"reference_type" json:"reference_type,omitempty"`
	ReferenceID   uuid.NullUUID     `db:"reference_id" json:"reference_id,omitempty"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
}

// BalanceSummary is the user-facing wallet overview. Pending covers
// withdrawal requests not yet processed.
type BalanceSummary struct {
	Balance     float64 `json:"balance"`
	TotalEarned float64 `json:"total_earned"`
	Pending     float64 `json:"pending"`
}
