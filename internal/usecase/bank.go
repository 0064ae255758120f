package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gic-bank/internal/domain"
)

// BankUseCase owns the ledger store and the interest rule registry, and
// implements transaction processing, balance reconstruction, interest
// accrual and statement assembly on top of them. It is designed for a
// single synchronous caller; every operation validates before it mutates,
// so a failed call leaves no partial write.
type BankUseCase struct {
	store  accountStore
	rules  ruleRegistry
	logger Logger
	clock  Clock
}

// NewBankUseCase creates an empty bank with the injected collaborators.
func NewBankUseCase(logger Logger, clock Clock) *BankUseCase {
	return &BankUseCase{
		store:  newAccountStore(),
		logger: logger,
		clock:  clock,
	}
}

// ProcessTransaction validates and posts a deposit or withdrawal, assigning
// it a per-date sequence id. The account is created lazily on first deposit;
// a withdrawal cannot create an account and cannot take the balance as of
// its date below zero.
func (b *BankUseCase) ProcessTransaction(date, accountID string, txType domain.TransactionType, amount decimal.Decimal) (domain.Transaction, error) {
	b.logger.Info(fmt.Sprintf("Processing transaction: %s %s %s %s", date, accountID, txType, amount))

	if !amount.IsPositive() {
		b.logger.Error(fmt.Sprintf("Amount must be greater than 0: %s", amount))
		return domain.Transaction{}, domain.ErrInvalidAmount
	}

	account := b.store.getOrNone(accountID)
	if account == nil {
		b.logger.Info(fmt.Sprintf("Creating new account: %s", accountID))
		if txType == domain.TypeWithdrawal {
			b.logger.Error(fmt.Sprintf("Cannot withdraw from a new account: %s", accountID))
			return domain.Transaction{}, domain.ErrNewAccountWithdrawal
		}
		account = b.store.create(accountID)
	}

	balance := b.currentBalance(account, date)
	if txType == domain.TypeWithdrawal && balance.LessThan(amount) {
		b.logger.Error(fmt.Sprintf("Insufficient balance: %s < %s", balance, amount))
		return domain.Transaction{}, domain.ErrInsufficientBalance
	}

	tx := domain.Transaction{
		Date:          date,
		AccountID:     accountID,
		Type:          txType,
		Amount:        amount,
		TransactionID: nextTransactionID(date, account),
	}
	account.Transactions = append(account.Transactions, tx)
	b.logger.Info(fmt.Sprintf("Transaction processed. New balance: %s", applyDelta(balance, tx)))

	return tx, nil
}

// currentBalance reconstructs the balance of an account as of date: the
// opening balance of date's month plus that month's deposits and
// withdrawals dated up to and including date.
func (b *BankUseCase) currentBalance(account *domain.Account, date string) decimal.Decimal {
	year, month := domain.YearMonth(date)
	balance := b.monthlyOpeningBalance(account, year, month)

	monthStart := domain.MonthStart(year, month)
	for _, tx := range account.Transactions {
		if tx.Date >= monthStart && tx.Date <= date {
			balance = applyDelta(balance, tx)
		}
	}
	return balance
}

// monthlyOpeningBalance replays the account's history one calendar month at
// a time, from the month of its earliest transaction up to (year, month)
// exclusive. Each month contributes its transaction deltas plus the
// interest accrued on it, so interest compounds into principal even though
// interest lines are never stored. The replay starts from scratch on every
// call; there is no memoized closing balance.
func (b *BankUseCase) monthlyOpeningBalance(account *domain.Account, year, month int) decimal.Decimal {
	if len(account.Transactions) == 0 {
		return decimal.Zero
	}

	earliest := account.Transactions[0].Date
	for _, tx := range account.Transactions[1:] {
		if tx.Date < earliest {
			earliest = tx.Date
		}
	}
	curYear, curMonth := domain.YearMonth(earliest)

	balance := decimal.Zero
	for curYear < year || (curYear == year && curMonth < month) {
		opening := balance

		monthStart := domain.MonthStart(curYear, curMonth)
		monthEnd := domain.MonthEnd(curYear, curMonth)
		for _, tx := range account.Transactions {
			if tx.Date >= monthStart && tx.Date <= monthEnd {
				balance = applyDelta(balance, tx)
			}
		}

		interest := b.accrueMonth(account, curYear, curMonth, opening)
		if interest.IsPositive() {
			balance = balance.Add(interest)
		}

		curYear, curMonth = domain.NextMonth(curYear, curMonth)
	}
	return balance
}

// nextTransactionID assigns <date>-<seq>, where seq counts the account's
// existing entries carrying that exact date string, independent of the
// chronological order the entries were posted in.
func nextTransactionID(date string, account *domain.Account) string {
	sameDay := 0
	for _, tx := range account.Transactions {
		if tx.Date == date {
			sameDay++
		}
	}
	return fmt.Sprintf("%s-%02d", date, sameDay+1)
}

// applyDelta folds one ledger entry into a running balance. Interest lines
// add like deposits, but never appear in stored history.
func applyDelta(balance decimal.Decimal, tx domain.Transaction) decimal.Decimal {
	if tx.Type == domain.TypeWithdrawal {
		return balance.Sub(tx.Amount)
	}
	return balance.Add(tx.Amount)
}
