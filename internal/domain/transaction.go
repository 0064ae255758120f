package domain

import "github.com/shopspring/decimal"

// TransactionType defines the nature of a ledger entry.
type TransactionType string

const (
	TypeDeposit    TransactionType = "D"
	TypeWithdrawal TransactionType = "W"
	TypeInterest   TransactionType = "I"
)

// Transaction is a single posted ledger entry.
//
// Deposits and withdrawals carry a TransactionID of the form YYYYMMDD-XX,
// where XX is a per-account sequence number for that exact date. Interest
// transactions are synthesized at statement time, are never stored, and
// carry no TransactionID.
type Transaction struct {
	Date          string          `json:"date"` // YYYYMMDD
	AccountID     string          `json:"account_id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// Account groups the append-only transaction history for one account.
// There is no stored balance: balances are always derived by replaying the
// history against the interest rule schedule.
type Account struct {
	ID           string
	Transactions []Transaction
}

// InterestRule is an effective-dated annual interest rate. A rule applies
// from its date forward until superseded by a later-dated rule. At most one
// rule exists per effective date.
type InterestRule struct {
	Date   string          `json:"date"` // YYYYMMDD
	RuleID string          `json:"rule_id"`
	Rate   decimal.Decimal `json:"rate"` // annual percent, 0 < rate < 100
}
