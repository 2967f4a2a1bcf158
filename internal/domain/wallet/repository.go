package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines ledger data access interface
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID, filter *ListFilter) ([]*Transaction, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	SumByUserAndType(ctx context.Context, userID uuid.UUID, txType TransactionType) (float64, error)
	SumPendingByUser(ctx context.Context, userID uuid.UUID) (float64, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (float64, error)
	// IncrementBalance applies a server-side atomic balance update so that
	// concurrent settlements for the same user never lose updates.
	IncrementBalance(ctx context.Context, userID uuid.UUID, amount float64) error
}

// ListFilter for paginating transaction history
type ListFilter struct {
	Type   TransactionType
	Limit  int
	Offset int
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new wallet repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTransaction(ctx context.Context, tx *Transaction) error {
	query := `
		INSERT INTO transactions (
			id, user_id, type, amount, description, status,
			reference_type, reference_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.UserID,
		tx.Type,
		tx.Amount,
		tx.Description,
		tx.Status,
		tx.ReferenceType,
		tx.ReferenceID,
		tx.CreatedAt,
	)
	return err
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, filter *ListFilter) ([]*Transaction, error) {
	query := `SELECT * FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}
	argPos := 2

	if filter != nil {
		if filter.Type != "" {
			query += fmt.Sprintf(` AND type = $%d`, argPos)
			args = append(args, filter.Type)
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

	var transactions []*Transaction
	err := r.db.SelectContext(ctx, &transactions, query, args...)
	return transactions, err
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID)
	return count, err
}

func (r *repository) SumByUserAndType(ctx context.Context, userID uuid.UUID, txType TransactionType) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2 AND status = 'completed'
	`
	var sum float64
	err := r.db.GetContext(ctx, &sum, query, userID, txType)
	return sum, err
}

func (r *repository) SumPendingByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND status = 'pending'
	`
	var sum float64
	err := r.db.GetContext(ctx, &sum, query, userID)
	return sum, err
}

func (r *repository) GetBalance(ctx context.Context, userID uuid.UUID) (float64, error) {
	var balance float64
	err := r.db.GetContext(ctx, &balance, `SELECT balance FROM user_profiles WHERE id = $1`, userID)
	return balance, err
}

func (r *repository) IncrementBalance(ctx context.Context, userID uuid.UUID, amount float64) error {
	// increment_user_balance is a stored procedure; the read-modify-write
	// happens server side in a single statement.
	_, err := r.db.ExecContext(ctx, `SELECT increment_user_balance($1, $2)`, userID, amount)
	return err
}
