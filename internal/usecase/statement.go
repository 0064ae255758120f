package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"gic-bank/internal/domain"
)

// DefaultRecentCount is the number of entries the recency view returns when
// the caller does not choose one.
const DefaultRecentCount = 10

// MonthlyStatement assembles the statement for one calendar month: the
// month's opening balance, its transactions in ascending date order, and,
// for months already closed, one synthetic interest line dated the month's
// last day. The interest line is derived on every call and never written
// back to the ledger.
func (b *BankUseCase) MonthlyStatement(accountID string, year, month int) (*domain.AccountStatement, error) {
	account := b.store.getOrNone(accountID)
	if account == nil {
		b.logger.Error(fmt.Sprintf("Account not found: %s", accountID))
		return nil, domain.ErrAccountNotFound
	}

	monthStart := domain.MonthStart(year, month)
	monthEnd := domain.MonthEnd(year, month)
	opening := b.monthlyOpeningBalance(account, year, month)

	var transactions []domain.Transaction
	for _, tx := range account.Transactions {
		if tx.Date >= monthStart && tx.Date <= monthEnd {
			transactions = append(transactions, tx)
		}
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date < transactions[j].Date
	})

	// The current month is still accruing, so its interest is not yet
	// finalized and is left off the statement.
	now := b.clock.Now()
	if year != now.Year() || time.Month(month) != now.Month() {
		interest := b.accrueMonth(account, year, month, opening)
		if interest.IsPositive() {
			transactions = append(transactions, domain.Transaction{
				Date:      monthEnd,
				AccountID: accountID,
				Type:      domain.TypeInterest,
				Amount:    interest,
			})
		}
	}

	return &domain.AccountStatement{
		AccountID:      accountID,
		Transactions:   transactions,
		OpeningBalance: opening,
	}, nil
}

// RecentTransactions returns the count most-recently-dated entries in
// ascending date order. The view is a recency list, not a ledger
// reconstruction, so its opening balance is always zero.
func (b *BankUseCase) RecentTransactions(accountID string, count int) (*domain.AccountStatement, error) {
	account := b.store.getOrNone(accountID)
	if account == nil {
		b.logger.Error(fmt.Sprintf("Account not found: %s", accountID))
		return nil, domain.ErrAccountNotFound
	}

	recent := make([]domain.Transaction, len(account.Transactions))
	copy(recent, account.Transactions)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > count {
		recent = recent[:count]
	}
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date < recent[j].Date })

	return &domain.AccountStatement{
		AccountID:      accountID,
		Transactions:   recent,
		OpeningBalance: decimal.Zero,
	}, nil
}

// AccountStatement dispatches to the monthly view when both year and month
// are given (non-zero), and to the recency view otherwise.
func (b *BankUseCase) AccountStatement(accountID string, year, month int) (*domain.AccountStatement, error) {
	if year != 0 && month != 0 {
		return b.MonthlyStatement(accountID, year, month)
	}
	return b.RecentTransactions(accountID, DefaultRecentCount)
}
