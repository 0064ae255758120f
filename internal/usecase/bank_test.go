package usecase_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gic-bank/internal/domain"
	"gic-bank/internal/usecase"
	mock_usecase "gic-bank/internal/usecase/mocks"
)

// newTestBank builds a bank whose logger swallows everything and whose
// clock is pinned to now.
func newTestBank(t *testing.T, ctrl *gomock.Controller, now time.Time) *usecase.BankUseCase {
	t.Helper()

	logger := mock_usecase.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	clock := mock_usecase.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	return usecase.NewBankUseCase(logger, clock)
}

func amount(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	assert.NoError(t, err)
	return d
}

func deposit(t *testing.T, bank *usecase.BankUseCase, date, accountID, amt string) domain.Transaction {
	t.Helper()
	tx, err := bank.ProcessTransaction(date, accountID, domain.TypeDeposit, amount(t, amt))
	assert.NoError(t, err)
	return tx
}

func TestProcessTransaction_SameDateSequenceIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bank := newTestBank(t, ctrl, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC))

	first := deposit(t, bank, "20230601", "AC001", "100.00")
	// A later-dated post in between must not disturb the 20230601 sequence.
	middle := deposit(t, bank, "20230605", "AC001", "25.00")
	second := deposit(t, bank, "20230601", "AC001", "150.00")

	assert.Equal(t, "20230601-01", first.TransactionID)
	assert.Equal(t, "20230605-01", middle.TransactionID)
	assert.Equal(t, "20230601-02", second.TransactionID)
}

func TestProcessTransaction_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		prepare func(t *testing.T, bank *usecase.BankUseCase)
		date    string
		account string
		txType  domain.TransactionType
		amount  string
		wantErr error
	}{
		{
			name:    "zero amount",
			date:    "20230601",
			account: "AC001",
			txType:  domain.TypeDeposit,
			amount:  "0",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			date:    "20230601",
			account: "AC001",
			txType:  domain.TypeWithdrawal,
			amount:  "-5.00",
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "withdrawal cannot create an account",
			date:    "20230601",
			account: "AC002",
			txType:  domain.TypeWithdrawal,
			amount:  "0.01",
			wantErr: domain.ErrNewAccountWithdrawal,
		},
		{
			name: "withdrawal exceeding balance",
			prepare: func(t *testing.T, bank *usecase.BankUseCase) {
				deposit(t, bank, "20230601", "AC003", "100.00")
			},
			date:    "20230601",
			account: "AC003",
			txType:  domain.TypeWithdrawal,
			amount:  "200.00",
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bank := newTestBank(t, ctrl, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC))
			if tt.prepare != nil {
				tt.prepare(t, bank)
			}

			_, err := bank.ProcessTransaction(tt.date, tt.account, tt.txType, amount(t, tt.amount))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProcessTransaction_FailedWithdrawalLeavesLedgerIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bank := newTestBank(t, ctrl, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC))

	deposit(t, bank, "20230601", "AC001", "100.00")
	_, err := bank.ProcessTransaction("20230601", "AC001", domain.TypeWithdrawal, amount(t, "200.00"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	statement, err := bank.RecentTransactions("AC001", 10)
	assert.NoError(t, err)
	assert.Len(t, statement.Transactions, 1)
	assert.Equal(t, "20230601-01", statement.Transactions[0].TransactionID)
}

func TestProcessTransaction_WithdrawalUpToBalanceSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bank := newTestBank(t, ctrl, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC))

	deposit(t, bank, "20230601", "AC001", "100.00")
	tx, err := bank.ProcessTransaction("20230605", "AC001", domain.TypeWithdrawal, amount(t, "100.00"))
	assert.NoError(t, err)
	assert.Equal(t, "20230605-01", tx.TransactionID)

	// The account is now empty; the next withdrawal must bounce.
	_, err = bank.ProcessTransaction("20230606", "AC001", domain.TypeWithdrawal, amount(t, "0.01"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestProcessTransaction_WithdrawalSeesPriorMonthInterest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bank := newTestBank(t, ctrl, time.Date(2023, 8, 15, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, bank.AddInterestRule("20230601", "RULE01", amount(t, "2.00")))
	deposit(t, bank, "20230601", "AC001", "1000.00")

	// June accrues 1.64, so in July the account covers 1001.64 but not a
	// cent more.
	_, err := bank.ProcessTransaction("20230710", "AC001", domain.TypeWithdrawal, amount(t, "1001.65"))
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	tx, err := bank.ProcessTransaction("20230710", "AC001", domain.TypeWithdrawal, amount(t, "1001.64"))
	assert.NoError(t, err)
	assert.Equal(t, "20230710-01", tx.TransactionID)
}
