package offer

import "errors"

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferInactive = errors.New("offer is not active")
	ErrInvalidValue  = errors.New("offer value must be positive")
)
