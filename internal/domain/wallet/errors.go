package wallet

import "errors"

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrTransactionFailed = errors.New("failed to record ledger transaction")
	ErrBalanceNotApplied = errors.New("ledger entry recorded but balance increment failed")
)
