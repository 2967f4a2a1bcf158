package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines user profile data access interface
type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	// GetLevel returns the account tier used for reward disclosure
	GetLevel(ctx context.Context, id uuid.UUID) (int, error)
	List(ctx context.Context, filter *ListFilter) ([]*Profile, error)
	Count(ctx context.Context, filter *ListFilter) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	UpdateLevel(ctx context.Context, id uuid.UUID, level int) error
}

// ListFilter for filtering users in the admin panel
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// repository implements Repository
type repository struct {
	db *sqlx.DB
}

// NewRepository creates new user repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO user_profiles (id, email, password_hash, full_name, role, status, level, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.ID,
		profile.Email,
		profile.PasswordHash,
		profile.FullName,
		profile.Role,
		profile.Status,
		profile.Level,
		profile.Balance,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Profile, error) {
	query := `SELECT * FROM user_profiles WHERE id = $1`
	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	query := `SELECT * FROM user_profiles WHERE email = $1`
	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *repository) GetLevel(ctx context.Context, id uuid.UUID) (int, error) {
	query := `SELECT level FROM user_profiles WHERE id = $1`
	var level int
	err := r.db.GetContext(ctx, &level, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return level, nil
}

func (r *repository) List(ctx context.Context, filter *ListFilter) ([]*Profile, error) {
	query := `SELECT * FROM user_profiles WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter != nil {
		if filter.Status != "" {
			query += fmt.Sprintf(` AND status = $%d`, argPos)
			args = append(args, filter.Status)
			argPos++
		}

		query += ` ORDER BY created_at DESC`

		if filter.Limit > 0 {
			query += fmt.Sprintf(` LIMIT $%d`, argPos)
			args = append(args, filter.Limit)
			argPos++
		}

		if filter.Offset > 0 {
			query += fmt.Sprintf(` OFFSET $%d`, argPos)
			args = append(args, filter.Offset)
		}
	} else {
		query += ` ORDER BY created_at DESC LIMIT 50`
	}

	var profiles []*Profile
	err := r.db.SelectContext(ctx, &profiles, query, args...)
	return profiles, err
}

func (r *repository) Count(ctx context.Context, filter *ListFilter) (int, error) {
	query := `SELECT COUNT(*) FROM user_profiles WHERE 1=1`
	args := []interface{}{}

	if filter != nil && filter.Status != "" {
		query += ` AND status = $1`
		args = append(args, filter.Status)
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE user_profiles SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) UpdateLevel(ctx context.Context, id uuid.UUID, level int) error {
	query := `UPDATE user_profiles SET level = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, level, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}
