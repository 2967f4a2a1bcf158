package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promohive/promohive-api/internal/domain/wallet"
)

// Ledger is the wallet surface needed to credit the welcome bonus
type Ledger interface {
	Credit(ctx context.Context, userID uuid.UUID, amount float64, txType wallet.TransactionType, description, referenceType string, referenceID uuid.UUID) (*wallet.Transaction, error)
}

// Mailer is the notification surface for account lifecycle emails.
// Sends are fire-and-forget.
type Mailer interface {
	SendWelcome(to, userName string, bonusAmount float64)
}

// Service handles user account business logic
type Service struct {
	repo         Repository
	ledger       Ledger
	mailer       Mailer
	welcomeBonus float64
}

// NewService creates user service
func NewService(repo Repository, ledger Ledger, mailer Mailer, welcomeBonus float64) *Service {
	return &Service{
		repo:         repo,
		ledger:       ledger,
		mailer:       mailer,
		welcomeBonus: welcomeBonus,
	}
}

// GetProfile returns a user profile
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

// ListUsers returns users for the admin panel
func (s *Service) ListUsers(ctx context.Context, filter *ListFilter) ([]*Profile, int, error) {
	profiles, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// Approve activates a pending account, credits the welcome bonus and queues
// the welcome email. The status change is durable before the bonus is
// attempted; a bonus failure is surfaced as ErrBonusNotPaid and the account
// stays active (manual reconciliation, same policy as submission settlement).
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	if profile.Status != StatusPending {
		return nil, ErrNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusActive); err != nil {
		return nil, err
	}
	profile.Status = StatusActive

	if s.welcomeBonus > 0 {
		_, err := s.ledger.Credit(ctx, id, s.welcomeBonus, wallet.TransactionTypeBonus,
			"Welcome bonus", "account_approval", id)
		if err != nil {
			log.Error().Err(err).
				Str("user_id", id.String()).
				Msg("Welcome bonus credit failed after approval")
			return profile, ErrBonusNotPaid
		}
	}

	s.mailer.SendWelcome(profile.Email, profile.FullName, s.welcomeBonus)

	return profile, nil
}

// Suspend suspends an account
func (s *Service) Suspend(ctx context.Context, id uuid.UUID) error {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrUserNotFound
	}
	return s.repo.UpdateStatus(ctx, id, StatusSuspended)
}

// SetLevel changes the account tier driving reward disclosure
func (s *Service) SetLevel(ctx context.Context, id uuid.UUID, level int) error {
	if level < 0 {
		return ErrInvalidLevel
	}
	return s.repo.UpdateLevel(ctx, id, level)
}
