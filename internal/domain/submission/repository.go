package submission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ListFilter defines submission listing filter options
type ListFilter struct {
	Status Status
	Limit  int
	Offset int
}

// Repository defines submission data access interface
type Repository interface {
	Create(ctx context.Context, sub *Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Submission, error)
	List(ctx context.Context, filter *ListFilter) ([]*Detail, error)
	Count(ctx context.Context, filter *ListFilter) (int, error)
	HasOpenSubmission(ctx context.Context, taskID, userID uuid.UUID) (bool, error)
	UpdateProof(ctx context.Context, id uuid.UUID, proofURL string) error
	MarkReviewed(ctx context.Context, id uuid.UUID, status Status, reviewerID uuid.UUID, notes string) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new submission repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, sub *Submission) error {
	query := `
		INSERT INTO task_submissions (
			id, task_id, user_id, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID,
		sub.TaskID,
		sub.UserID,
		sub.Status,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Submission, error) {
	query := `SELECT * FROM task_submissions WHERE id = $1`
	var sub Submission
	err := r.db.GetContext(ctx, &sub, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

const detailColumns = `
	s.id, s.task_id, s.user_id, s.status, s.proof_url, s.admin_notes,
	s.reviewed_by, s.reviewed_at, s.created_at, s.updated_at,
	t.title AS task_title,
	t.reward_amount AS task_reward,
	t.requirements AS task_requirements,
	u.email AS user_email,
	u.full_name AS user_full_name
`

func (r *repository) GetDetail(ctx context.Context, id uuid.UUID) (*Detail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM task_submissions s
		JOIN tasks t ON t.id = s.task_id
		JOIN user_profiles u ON u.id = s.user_id
		WHERE s.id = $1
	`
	var detail Detail
	err := r.db.GetContext(ctx, &detail, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Submission, error) {
	query := `
		SELECT * FROM task_submissions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var subs []*Submission
	err := r.db.SelectContext(ctx, &subs, query, userID)
	return subs, err
}

func (r *repository) List(ctx context.Context, filter *ListFilter) ([]*Detail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM task_submissions s
		JOIN tasks t ON t.id = s.task_id
		JOIN user_profiles u ON u.id = s.user_id
	`
	args := []interface{}{}

	if filter.Status != "" {
		query += ` WHERE s.status = $1`
		args = append(args, filter.Status)
	}

	query += ` ORDER BY s.created_at ASC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	var details []*Detail
	err := r.db.SelectContext(ctx, &details, query, args...)
	return details, err
}

func (r *repository) Count(ctx context.Context, filter *ListFilter) (int, error) {
	query := `SELECT COUNT(*) FROM task_submissions`
	args := []interface{}{}

	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	}

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

func (r *repository) HasOpenSubmission(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM task_submissions
			WHERE task_id = $1 AND user_id = $2 AND status = 'pending'
		)
	`
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, taskID, userID)
	return exists, err
}

func (r *repository) UpdateProof(ctx context.Context, id uuid.UUID, proofURL string) error {
	query := `
		UPDATE task_submissions
		SET proof_url = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, proofURL, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}

// MarkReviewed transitions a pending submission to a terminal status. The
// conditional WHERE guarantees a submission is reviewed at most once even
// under concurrent reviewers; the bool reports whether this call won.
func (r *repository) MarkReviewed(ctx context.Context, id uuid.UUID, status Status, reviewerID uuid.UUID, notes string) (bool, error) {
	query := `
		UPDATE task_submissions
		SET status = $1, reviewed_by = $2, reviewed_at = $3, admin_notes = $4, updated_at = $3
		WHERE id = $5 AND status = 'pending'
	`
	result, err := r.db.ExecContext(ctx, query, status, reviewerID, time.Now(), notes, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
