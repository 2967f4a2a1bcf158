package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferInactive = errors.New("offer is not active")
)
