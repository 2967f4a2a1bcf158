package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service handles ledger business logic
type Service struct {
	repo Repository
}

// NewService creates wallet service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Credit appends a completed ledger transaction and applies the same amount
// to the user's balance through the atomic increment procedure.
//
// The ledger write is durable before the increment is attempted. If the
// increment fails afterwards the error is surfaced as ErrBalanceNotApplied
// so the caller can flag the account for manual reconciliation; the ledger
// row is not rolled back.
func (s *Service) Credit(ctx context.Context, userID uuid.UUID, amount float64, txType TransactionType, description, referenceType string, referenceID uuid.UUID) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	tx := &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
		Status:      TransactionStatusCompleted,
		CreatedAt:   time.Now(),
	}
	if referenceType != "" {
		tx.ReferenceType.String = referenceType
		tx.ReferenceType.Valid = true
	}
	if referenceID != uuid.Nil {
		tx.ReferenceID = uuid.NullUUID{UUID: referenceID, Valid: true}
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransactionFailed, err)
	}

	if err := s.repo.IncrementBalance(ctx, userID, amount); err != nil {
		log.Error().Err(err).
			Str("user_id", userID.String()).
			Str("transaction_id", tx.ID.String()).
			Float64("amount", amount).
			Msg("Balance increment failed after ledger write")
		return tx, fmt.Errorf("%w: %v", ErrBalanceNotApplied, err)
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("type", string(txType)).
		Float64("amount", amount).
		Msg("Wallet credit applied")

	return tx, nil
}

// GetSummary returns the user's balance overview
func (s *Service) GetSummary(ctx context.Context, userID uuid.UUID) (*BalanceSummary, error) {
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	earned, err := s.repo.SumByUserAndType(ctx, userID, TransactionTypeEarning)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.SumPendingByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &BalanceSummary{
		Balance:     balance,
		TotalEarned: earned,
		Pending:     pending,
	}, nil
}

// ListTransactions returns the user's transaction history
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID, filter *ListFilter) ([]*Transaction, error) {
	return s.repo.ListByUser(ctx, userID, filter)
}

// CountTransactions returns total transaction count for a user
func (s *Service) CountTransactions(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountByUser(ctx, userID)
}
