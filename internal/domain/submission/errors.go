package submission

import "errors"

var (
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrAlreadySubmitted     = errors.New("task already has an open submission")
	ErrAlreadyReviewed      = errors.New("submission already reviewed")
	ErrNotOwner             = errors.New("submission belongs to another user")
	ErrInvalidAction        = errors.New("invalid review action")
	ErrInvalidProofType     = errors.New("proof must be a jpeg, png or webp image")
	ErrProofTooLarge        = errors.New("proof file exceeds the size limit")
	ErrSettlementIncomplete = errors.New("submission approved but payout was not applied")
)
