package task

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines task data access interface
type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*Task, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]*Task, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new task repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, task *Task) error {
	query := `
		INSERT INTO tasks (
			id, title, description, category, reward_amount, external_url,
			requirements, created_by, total_slots, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		task.Category,
		task.RewardAmount,
		task.ExternalURL,
		task.Requirements,
		task.CreatedBy,
		task.TotalSlots,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	query := `SELECT * FROM tasks WHERE id = $1`
	var task Task
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]*Task, error) {
	query := `
		SELECT * FROM tasks
		WHERE created_by = $1
		ORDER BY created_at DESC
	`
	var tasks []*Task
	err := r.db.SelectContext(ctx, &tasks, query, userID)
	return tasks, err
}
