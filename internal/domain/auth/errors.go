package auth

import "errors"

var (
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountSuspended    = errors.New("account is suspended")
	ErrInvalidRefreshToken = errors.New("invalid or revoked refresh token")
)
