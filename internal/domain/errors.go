package domain

import "errors"

// Domain errors returned by the ledger core. Every failure aborts the
// current operation before any mutation; callers match with errors.Is and
// are responsible for presentation.
var (
	// ErrInvalidAmount rejects transaction amounts that are not positive.
	ErrInvalidAmount = errors.New("amount must be greater than 0")

	// ErrNewAccountWithdrawal rejects a withdrawal against an account with
	// no prior transactions.
	ErrNewAccountWithdrawal = errors.New("cannot withdraw from a new account")

	// ErrInsufficientBalance rejects a withdrawal exceeding the balance as
	// of the transaction date.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAccountNotFound rejects reads and accruals against an unknown
	// account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidRate rejects interest rates outside the open interval
	// (0, 100).
	ErrInvalidRate = errors.New("interest rate must be between 0 and 100")
)
