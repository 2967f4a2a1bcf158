package reward

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Service handles reward disclosure business logic. It is the single code
// path computing disclosed rewards, shared by offer listing and task
// creation so the two can never drift apart.
type Service struct {
	repo Repository
}

// NewService creates reward service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Overrides loads the admin override table as a level->percentage map.
// Disclosure must never fail, so a load error degrades to the built-in
// schedule and is logged.
func (s *Service) Overrides(ctx context.Context) map[int]float64 {
	configs, err := s.repo.List(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load level reward config, using default schedule")
		return nil
	}

	overrides := make(map[int]float64, len(configs))
	for _, c := range configs {
		overrides[c.Level] = c.RewardPercentage
	}
	return overrides
}

// DiscloseValue computes the disclosed reward for a true value at a level,
// applying any admin overrides
func (s *Service) DiscloseValue(ctx context.Context, trueValue float64, level int) float64 {
	return Disclose(trueValue, level, s.Overrides(ctx))
}

// RateForLevel returns the effective disclosure percentage for a level
func (s *Service) RateForLevel(ctx context.Context, level int) float64 {
	return Rate(level, s.Overrides(ctx))
}

// GetConfig returns all override rows (admin)
func (s *Service) GetConfig(ctx context.Context) ([]*LevelConfig, error) {
	return s.repo.List(ctx)
}

// UpdateConfig upserts the override percentage for a level (admin)
func (s *Service) UpdateConfig(ctx context.Context, level int, percentage float64) (*LevelConfig, error) {
	if level < 0 {
		return nil, ErrInvalidLevel
	}
	if percentage <= 0 || percentage > 1 {
		return nil, ErrInvalidPercentage
	}
	return s.repo.Upsert(ctx, level, percentage)
}
