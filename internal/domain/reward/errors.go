package reward

import "errors"

var (
	ErrInvalidLevel      = errors.New("level must be a non-negative integer")
	ErrInvalidPercentage = errors.New("percentage must be greater than 0 and at most 1")
)
