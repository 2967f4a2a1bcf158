package offer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/promohive/promohive-api/internal/domain/reward"
)

const (
	activeOffersCacheKey = "offers:active"
	activeOffersCacheTTL = 30 * time.Second
)

// Rates exposes the reward disclosure overrides. The disclosed value itself
// is always computed through reward.Disclose so listing and task creation
// share one code path.
type Rates interface {
	Overrides(ctx context.Context) map[int]float64
}

// LevelProvider resolves a user's account tier
type LevelProvider interface {
	GetLevel(ctx context.Context, id uuid.UUID) (int, error)
}

// Service handles offer business logic
type Service struct {
	repo   Repository
	rates  Rates
	levels LevelProvider
	cache  *redis.Client // optional, nil disables caching
}

// NewService creates offer service
func NewService(repo Repository, rates Rates, levels LevelProvider, cache *redis.Client) *Service {
	return &Service{
		repo:   repo,
		rates:  rates,
		levels: levels,
		cache:  cache,
	}
}

// ListForUser returns active offers with the reward disclosed for the
// caller's level. A failed level lookup degrades to level 0 and never
// aborts the listing; uuid.Nil (anonymous caller) also means level 0.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*UserOffer, error) {
	offers, err := s.listActive(ctx)
	if err != nil {
		return nil, err
	}

	level := 0
	if userID != uuid.Nil {
		lvl, err := s.levels.GetLevel(ctx, userID)
		if err != nil {
			log.Warn().Err(err).
				Str("user_id", userID.String()).
				Msg("Failed to load user level for offer listing, defaulting to 0")
		} else {
			level = lvl
		}
	}

	overrides := s.rates.Overrides(ctx)

	projected := make([]*UserOffer, 0, len(offers))
	for _, o := range offers {
		projected = append(projected, NewUserOffer(o, level, reward.Disclose(o.TrueValue, level, overrides)))
	}
	return projected, nil
}

// listActive returns active offers, read through the Redis cache when
// available. Only raw offers are cached; the per-user disclosure is always
// recomputed.
func (s *Service) listActive(ctx context.Context) ([]*Offer, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, activeOffersCacheKey).Bytes(); err == nil {
			var offers []*Offer
			if err := json.Unmarshal(data, &offers); err == nil {
				return offers, nil
			}
		}
	}

	offers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(offers); err == nil {
			if err := s.cache.Set(ctx, activeOffersCacheKey, data, activeOffersCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("Failed to cache active offers")
			}
		}
	}

	return offers, nil
}

// invalidateCache drops the active-offer cache after an admin mutation
func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, activeOffersCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate offer cache")
	}
}

// GetByID returns a full offer (admin)
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Offer, error) {
	offer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// ListAll returns all offers including inactive ones (admin)
func (s *Service) ListAll(ctx context.Context) ([]*Offer, error) {
	return s.repo.ListAll(ctx)
}

// Create creates an offer (admin)
func (s *Service) Create(ctx context.Context, req *CreateOfferRequest) (*Offer, error) {
	if req.TrueValue <= 0 {
		return nil, ErrInvalidValue
	}

	offer := &Offer{
		ID:           uuid.New(),
		ExternalID:   req.ExternalID,
		Title:        req.Title,
		Description:  req.Description,
		TrueValue:    req.TrueValue,
		Currency:     req.Currency,
		Countries:    req.Countries,
		DeviceTypes:  req.DeviceTypes,
		Category:     req.Category,
		ExternalURL:  req.ExternalURL,
		Requirements: req.Requirements,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if offer.Currency == "" {
		offer.Currency = "USD"
	}
	if len(offer.DeviceTypes) == 0 {
		offer.DeviceTypes = []string{"mobile", "desktop"}
	}
	if offer.Requirements == nil {
		offer.Requirements = JSONMap{}
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return offer, nil
}

// Update patches an offer (admin)
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateOfferRequest) (*Offer, error) {
	if req.TrueValue != nil && *req.TrueValue <= 0 {
		return nil, ErrInvalidValue
	}

	offer, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	s.invalidateCache(ctx)
	return offer, nil
}

// Delete removes an offer (admin)
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}
