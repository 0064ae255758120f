package domain

import "github.com/shopspring/decimal"

// AccountStatement is a read model assembled on demand from the ledger. It
// is never persisted. A monthly statement may include one synthetic interest
// transaction; the recency view always reports a zero opening balance.
type AccountStatement struct {
	AccountID      string
	Transactions   []Transaction
	OpeningBalance decimal.Decimal
}
