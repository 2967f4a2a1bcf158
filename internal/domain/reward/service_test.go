package reward

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeConfigRepo struct {
	configs []*LevelConfig
	listErr error
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]*LevelConfig, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.configs, nil
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, level int, percentage float64) (*LevelConfig, error) {
	cfg := &LevelConfig{Level: level, RewardPercentage: percentage, UpdatedAt: time.Now()}
	f.configs = append(f.configs, cfg)
	return cfg, nil
}

func TestOverridesLoadsConfigTable(t *testing.T) {
	repo := &fakeConfigRepo{configs: []*LevelConfig{
		{Level: 0, RewardPercentage: 0.15},
		{Level: 1, RewardPercentage: 0.30},
	}}
	svc := NewService(repo)

	overrides := svc.Overrides(context.Background())
	if overrides[0] != 0.15 || overrides[1] != 0.30 {
		t.Fatalf("unexpected overrides: %v", overrides)
	}
}

func TestOverridesDegradeOnStoreFailure(t *testing.T) {
	repo := &fakeConfigRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo)

	if overrides := svc.Overrides(context.Background()); overrides != nil {
		t.Fatalf("expected nil overrides on store failure, got %v", overrides)
	}
	// disclosure keeps working on the built-in schedule
	if got := svc.DiscloseValue(context.Background(), 100, 1); got != 25 {
		t.Fatalf("expected schedule disclosure 25, got %v", got)
	}
}

func TestDiscloseValueAppliesOverride(t *testing.T) {
	repo := &fakeConfigRepo{configs: []*LevelConfig{{Level: 1, RewardPercentage: 0.50}}}
	svc := NewService(repo)

	if got := svc.DiscloseValue(context.Background(), 100, 1); got != 50 {
		t.Fatalf("expected overridden disclosure 50, got %v", got)
	}
}

func TestUpdateConfigValidation(t *testing.T) {
	svc := NewService(&fakeConfigRepo{})

	if _, err := svc.UpdateConfig(context.Background(), -1, 0.5); err != ErrInvalidLevel {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if _, err := svc.UpdateConfig(context.Background(), 1, 0); err != ErrInvalidPercentage {
		t.Fatalf("expected ErrInvalidPercentage for 0, got %v", err)
	}
	if _, err := svc.UpdateConfig(context.Background(), 1, 1.5); err != ErrInvalidPercentage {
		t.Fatalf("expected ErrInvalidPercentage for 1.5, got %v", err)
	}
	if _, err := svc.UpdateConfig(context.Background(), 1, 1); err != nil {
		t.Fatalf("a full-disclosure percentage of 1 is allowed, got %v", err)
	}
}
