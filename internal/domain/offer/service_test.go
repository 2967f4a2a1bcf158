package offer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fakeOfferRepo struct {
	active  []*Offer
	byID    map[uuid.UUID]*Offer
	listErr error
}

func (f *fakeOfferRepo) Create(ctx context.Context, o *Offer) error {
	if f.byID == nil {
		f.byID = map[uuid.UUID]*Offer{}
	}
	f.byID[o.ID] = o
	f.active = append(f.active, o)
	return nil
}
func (f *fakeOfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*Offer, error) {
	return f.byID[id], nil
}
func (f *fakeOfferRepo) ListActive(ctx context.Context) ([]*Offer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.active, nil
}
func (f *fakeOfferRepo) ListAll(ctx context.Context) ([]*Offer, error) { return f.active, nil }
func (f *fakeOfferRepo) Update(ctx context.Context, id uuid.UUID, patch *UpdateOfferRequest) (*Offer, error) {
	return f.byID[id], nil
}
func (f *fakeOfferRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeRates struct {
	overrides map[int]float64
}

func (f *fakeRates) Overrides(ctx context.Context) map[int]float64 { return f.overrides }

type fakeLevels struct {
	level int
	err   error
}

func (f *fakeLevels) GetLevel(ctx context.Context, id uuid.UUID) (int, error) {
	return f.level, f.err
}

func testOffer(trueValue float64) *Offer {
	return &Offer{
		ID:          uuid.New(),
		ExternalID:  "ext-1",
		Title:       "Install app",
		TrueValue:   trueValue,
		Currency:    "USD",
		ExternalURL: "https://example.com/offer",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestListForUserDisclosesByLevel(t *testing.T) {
	repo := &fakeOfferRepo{active: []*Offer{testOffer(100)}}
	svc := NewService(repo, &fakeRates{}, &fakeLevels{level: 1}, nil)

	offers, err := svc.ListForUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}
	if offers[0].DisplayReward != 25 {
		t.Fatalf("expected display reward 25 for level 1, got %v", offers[0].DisplayReward)
	}
	if offers[0].UserLevel != 1 {
		t.Fatalf("expected user level 1, got %d", offers[0].UserLevel)
	}
}

func TestListForUserLevelLookupFailureDefaultsToZero(t *testing.T) {
	repo := &fakeOfferRepo{active: []*Offer{testOffer(100)}}
	levels := &fakeLevels{level: 4, err: errors.New("connection refused")}
	svc := NewService(repo, &fakeRates{}, levels, nil)

	offers, err := svc.ListForUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("listing must not abort on a level lookup failure, got %v", err)
	}
	if offers[0].DisplayReward != 10 {
		t.Fatalf("expected level-0 reward 10, got %v", offers[0].DisplayReward)
	}
	if offers[0].UserLevel != 0 {
		t.Fatalf("expected level 0, got %d", offers[0].UserLevel)
	}
}

func TestListForUserAnonymousGetsBaseRate(t *testing.T) {
	repo := &fakeOfferRepo{active: []*Offer{testOffer(50)}}
	svc := NewService(repo, &fakeRates{}, &fakeLevels{level: 3}, nil)

	offers, err := svc.ListForUser(context.Background(), uuid.Nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if offers[0].DisplayReward != 5 {
		t.Fatalf("expected base-rate reward 5, got %v", offers[0].DisplayReward)
	}
}

func TestListForUserAppliesOverrides(t *testing.T) {
	repo := &fakeOfferRepo{active: []*Offer{testOffer(200)}}
	rates := &fakeRates{overrides: map[int]float64{2: 0.50}}
	svc := NewService(repo, rates, &fakeLevels{level: 2}, nil)

	offers, err := svc.ListForUser(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if offers[0].DisplayReward != 100 {
		t.Fatalf("expected overridden reward 100, got %v", offers[0].DisplayReward)
	}
}

func TestListForUserStoreFailurePropagates(t *testing.T) {
	repo := &fakeOfferRepo{listErr: errors.New("dial tcp: connection refused")}
	svc := NewService(repo, &fakeRates{}, &fakeLevels{}, nil)

	if _, err := svc.ListForUser(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}

func TestUserOfferJSONOmitsTrueValue(t *testing.T) {
	o := testOffer(100)
	projected := NewUserOffer(o, 1, 25)

	data, err := json.Marshal(projected)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "real_value") || strings.Contains(body, ":100") {
		t.Fatalf("user projection leaked the true value: %s", body)
	}
	if !strings.Contains(body, `"display_reward":25`) {
		t.Fatalf("expected disclosed reward in projection: %s", body)
	}
}

func TestCreateRejectsNonPositiveValue(t *testing.T) {
	svc := NewService(&fakeOfferRepo{}, &fakeRates{}, &fakeLevels{}, nil)

	_, err := svc.Create(context.Background(), &CreateOfferRequest{
		ExternalID:  "ext-2",
		Title:       "Bad offer",
		TrueValue:   0,
		ExternalURL: "https://example.com",
	})
	if err != ErrInvalidValue {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := &fakeOfferRepo{}
	svc := NewService(repo, &fakeRates{}, &fakeLevels{}, nil)

	o, err := svc.Create(context.Background(), &CreateOfferRequest{
		ExternalID:  "ext-3",
		Title:       "Survey",
		TrueValue:   12.5,
		ExternalURL: "https://example.com",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if o.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %q", o.Currency)
	}
	if len(o.DeviceTypes) != 2 {
		t.Fatalf("expected default device types, got %v", o.DeviceTypes)
	}
	if o.Requirements == nil {
		t.Fatal("expected empty requirements map, got nil")
	}
	if !o.IsActive {
		t.Fatal("expected new offer to be active")
	}
}
