package user

import (
	"time"

	"github.com/google/uuid"
)

// Role represents account role (matches user_role enum)
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Status represents account status (matches user_status enum)
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Profile represents a user account (matches user_profiles table).
// Level drives the reward disclosure percentage; Balance is mutated only
// through the increment_user_balance procedure.
type Profile struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         Role      `db:"role" json:"role"`
	Status       Status    `db:"status" json:"status"`
	Level        int       `db:"level" json:"level"`
	Balance      float64   `db:"balance" json:"balance"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// IsAdmin returns true if the account has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsActive returns true if the account has been approved and not suspended
func (p *Profile) IsActive() bool {
	return p.Status == StatusActive
}
