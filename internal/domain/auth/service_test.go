package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/promohive/promohive-api/internal/domain/user"
	"github.com/promohive/promohive-api/internal/pkg/jwt"
	"github.com/promohive/promohive-api/internal/pkg/password"
)

type fakeUserRepo struct {
	created *user.Profile
	byEmail *user.Profile
	byID    *user.Profile
}

func (f *fakeUserRepo) Create(ctx context.Context, p *user.Profile) error {
	f.created = p
	f.byID = p
	f.byEmail = p
	return nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.Profile, error) {
	if f.byID != nil && f.byID.ID == id {
		return f.byID, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.Profile, error) {
	if f.byEmail != nil && f.byEmail.Email == email {
		return f.byEmail, nil
	}
	return nil, nil
}
func (f *fakeUserRepo) GetLevel(ctx context.Context, id uuid.UUID) (int, error) { return 0, nil }
func (f *fakeUserRepo) List(ctx context.Context, filter *user.ListFilter) ([]*user.Profile, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(ctx context.Context, filter *user.ListFilter) (int, error) {
	return 0, nil
}
func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status user.Status) error {
	return nil
}
func (f *fakeUserRepo) UpdateLevel(ctx context.Context, id uuid.UUID, level int) error {
	return nil
}

func newTestService(repo user.Repository) *Service {
	jwtService := jwt.NewService("test-secret", time.Minute, time.Hour)
	return NewService(repo, jwtService, nil)
}

func activeUser(t *testing.T, email, plainPassword string) *user.Profile {
	t.Helper()
	hash, err := password.Hash(plainPassword)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	return &user.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FullName:     "Existing User",
		Role:         user.RoleUser,
		Status:       user.StatusActive,
		CreatedAt:    time.Now(),
	}
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)

	profile, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "New@Example.com",
		Password: "password123",
		FullName: "  New User  ",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.Status != user.StatusPending {
		t.Fatalf("new accounts must be pending, got %v", profile.Status)
	}
	if profile.Level != 0 {
		t.Fatalf("new accounts must start at level 0, got %d", profile.Level)
	}
	if profile.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", profile.Email)
	}
	if profile.FullName != "New User" {
		t.Fatalf("expected trimmed name, got %q", profile.FullName)
	}
	if profile.PasswordHash == "password123" || profile.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmail: activeUser(t, "taken@example.com", "password123")}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Other User",
	})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	existing := activeUser(t, "user@example.com", "password123")
	repo := &fakeUserRepo{byEmail: existing, byID: existing}
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if resp.User.ID != existing.ID {
		t.Fatalf("expected profile %v, got %v", existing.ID, resp.User.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	existing := activeUser(t, "user@example.com", "password123")
	repo := &fakeUserRepo{byEmail: existing}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginSuspendedAccount(t *testing.T) {
	existing := activeUser(t, "user@example.com", "password123")
	existing.Status = user.StatusSuspended
	repo := &fakeUserRepo{byEmail: existing}
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	if err != ErrAccountSuspended {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
}

func TestLoginPendingAccountAllowed(t *testing.T) {
	// pending accounts can log in and browse; earning is gated elsewhere
	existing := activeUser(t, "user@example.com", "password123")
	existing.Status = user.StatusPending
	repo := &fakeUserRepo{byEmail: existing, byID: existing}
	svc := newTestService(repo)

	if _, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("expected pending login to succeed, got %v", err)
	}
}

func TestRefreshIssuesNewPair(t *testing.T) {
	existing := activeUser(t, "user@example.com", "password123")
	repo := &fakeUserRepo{byEmail: existing, byID: existing}
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), resp.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if refreshed.Tokens.AccessToken == "" || refreshed.Tokens.RefreshToken == "" {
		t.Fatal("expected a fresh token pair")
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})

	if _, err := svc.Refresh(context.Background(), "not-a-token"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	existing := activeUser(t, "user@example.com", "password123")
	repo := &fakeUserRepo{byEmail: existing, byID: existing}
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), resp.Tokens.AccessToken); err != ErrInvalidRefreshToken {
		t.Fatalf("an access token must not pass as a refresh token, got %v", err)
	}
}

func TestRefreshSuspendedAccount(t *testing.T) {
	existing := activeUser(t, "user@example.com", "password123")
	repo := &fakeUserRepo{byEmail: existing, byID: existing}
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	existing.Status = user.StatusSuspended
	if _, err := svc.Refresh(context.Background(), resp.Tokens.RefreshToken); err != ErrAccountSuspended {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
}
