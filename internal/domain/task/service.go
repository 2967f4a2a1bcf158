package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/promohive/promohive-api/internal/domain/offer"
	"github.com/promohive/promohive-api/internal/domain/reward"
)

// OfferRepository is the offer surface the bridge needs
type OfferRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error)
}

// Rates exposes the reward disclosure overrides
type Rates interface {
	Overrides(ctx context.Context) map[int]float64
}

// LevelProvider resolves a user's account tier
type LevelProvider interface {
	GetLevel(ctx context.Context, id uuid.UUID) (int, error)
}

// Service materializes tasks from offers (the offer-task bridge)
type Service struct {
	repo   Repository
	offers OfferRepository
	rates  Rates
	levels LevelProvider
}

// NewService creates task service
func NewService(repo Repository, offers OfferRepository, rates Rates, levels LevelProvider) *Service {
	return &Service{
		repo:   repo,
		offers: offers,
		rates:  rates,
		levels: levels,
	}
}

// CreateFromOffer creates a task for the user from an active offer. The
// task's visible reward is the disclosed value for the user's level; the
// true value and the level at creation time are embedded in the
// requirements payload for settlement and audit.
//
// An offer fetch failure aborts the operation; a level lookup failure does
// not (level defaults to 0, logged).
func (s *Service) CreateFromOffer(ctx context.Context, userID uuid.UUID, offerID uuid.UUID) (*Task, error) {
	o, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferNotFound
	}
	if !o.IsActive {
		return nil, ErrOfferInactive
	}

	level := 0
	if lvl, err := s.levels.GetLevel(ctx, userID); err != nil {
		log.Warn().Err(err).
			Str("user_id", userID.String()).
			Str("offer_id", offerID.String()).
			Msg("Failed to load user level for task creation, defaulting to 0")
	} else {
		level = lvl
	}

	disclosed := reward.Disclose(o.TrueValue, level, s.rates.Overrides(ctx))

	requirements := offer.JSONMap{}
	for k, v := range o.Requirements {
		requirements[k] = v
	}
	requirements[ReqKeyOfferID] = offerID.String()
	requirements[ReqKeyTrueValue] = o.TrueValue
	requirements[ReqKeyLevelAtCreation] = level

	t := &Task{
		ID:           uuid.New(),
		Title:        o.Title,
		Description:  o.Description,
		Category:     CategoryAdgem,
		RewardAmount: disclosed,
		ExternalURL:  o.ExternalURL,
		Requirements: requirements,
		CreatedBy:    userID,
		TotalSlots:   1, // offer-wall tasks are single-claim
		Status:       StatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// GetTask returns a task
func (s *Service) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// ListMine returns tasks created by the user
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*Task, error) {
	return s.repo.ListByCreator(ctx, userID)
}
