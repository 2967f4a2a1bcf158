package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrNotPending   = errors.New("account is not pending approval")
	ErrInvalidLevel = errors.New("level must be a non-negative integer")
	ErrBonusNotPaid = errors.New("account approved but welcome bonus was not credited")
)
