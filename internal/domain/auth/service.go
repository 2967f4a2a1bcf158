package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/promohive/promohive-api/internal/domain/user"
	"github.com/promohive/promohive-api/internal/pkg/jwt"
	"github.com/promohive/promohive-api/internal/pkg/password"
)

const refreshKeyPrefix = "refresh:"

// Service implements registration and token-based authentication
type Service struct {
	users user.Repository
	jwt   *jwt.Service

	// redis holds the refresh-token allowlist for rotation; nil means
	// stateless refresh (tokens valid until expiry, no revocation)
	redis *redis.Client
}

// NewService creates auth service
func NewService(users user.Repository, jwtService *jwt.Service, redisClient *redis.Client) *Service {
	return &Service{
		users: users,
		jwt:   jwtService,
		redis: redisClient,
	}
}

// Register creates a pending account. Pending accounts can log in but
// earn nothing until an admin approves them.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*user.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	profile := &user.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         user.RoleUser,
		Status:       user.StatusPending,
		Level:        0,
		Balance:      0,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// Login authenticates credentials and issues a token pair
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(req.Password, profile.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if profile.Status == user.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	tokens, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: profile, Tokens: *tokens}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a
// new pair is issued. With Redis configured a refresh token is single-use.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if s.redis != nil {
		key := refreshKeyPrefix + claims.ID
		deleted, err := s.redis.Del(ctx, key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("Failed to check refresh token allowlist")
		} else if deleted == 0 {
			// unknown or already-used token
			return nil, ErrInvalidRefreshToken
		}
	}

	profile, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidRefreshToken
	}
	if profile.Status == user.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	tokens, err := s.issueTokens(ctx, profile)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: profile, Tokens: *tokens}, nil
}

// GetProfile returns the authenticated user's profile
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, user.ErrUserNotFound
	}
	return profile, nil
}

func (s *Service) issueTokens(ctx context.Context, profile *user.Profile) (*TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(profile.ID, string(profile.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, jti, expiresAt, err := s.jwt.GenerateRefreshToken(profile.ID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		key := refreshKeyPrefix + jti
		ttl := time.Until(expiresAt)
		if err := s.redis.Set(ctx, key, profile.ID.String(), ttl).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to record refresh token in allowlist")
		}
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
