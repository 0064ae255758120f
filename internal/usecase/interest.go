package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"gic-bank/internal/domain"
)

// 365-day year regardless of leap years, expressed in annual-percent units.
var daysPerYearPercent = decimal.NewFromInt(36500)

var maxRate = decimal.NewFromInt(100)

// AddInterestRule registers an annual rate effective from date. A rule
// already registered for the same date is replaced, whatever its rule id.
func (b *BankUseCase) AddInterestRule(date, ruleID string, rate decimal.Decimal) error {
	b.logger.Info(fmt.Sprintf("Adding interest rule: %s %s %s%%", date, ruleID, rate))

	if !rate.IsPositive() || rate.GreaterThanOrEqual(maxRate) {
		b.logger.Error(fmt.Sprintf("Interest rate must be between 0 and 100: %s", rate))
		return domain.ErrInvalidRate
	}

	b.rules.upsert(domain.InterestRule{Date: date, RuleID: ruleID, Rate: rate})
	return nil
}

// InterestRules returns a snapshot of all rules, ascending by effective
// date.
func (b *BankUseCase) InterestRules() []domain.InterestRule {
	return b.rules.snapshot()
}

// CalculateInterest accrues one month of interest for an account given its
// opening balance, returning the total rounded to the cent.
func (b *BankUseCase) CalculateInterest(accountID string, year, month int, openingBalance decimal.Decimal) (decimal.Decimal, error) {
	b.logger.Info(fmt.Sprintf("Calculating interest for account %s for %d-%d", accountID, year, month))

	account := b.store.getOrNone(accountID)
	if account == nil {
		b.logger.Error(fmt.Sprintf("Account not found: %s", accountID))
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return b.accrueMonth(account, year, month, openingBalance), nil
}

// accrueMonth simulates the account balance day by day across the month and
// applies whichever rule is effective on each day. Same-day postings are
// folded into the balance before that day's rate is applied, so a deposit
// earns interest from its own date. Interest accumulates outside the
// balance: there is no intra-month compounding. Days before the first rule
// ever registered accrue nothing.
func (b *BankUseCase) accrueMonth(account *domain.Account, year, month int, openingBalance decimal.Decimal) decimal.Decimal {
	balance := openingBalance
	total := decimal.Zero

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := domain.DayString(d)
		for _, tx := range account.Transactions {
			if tx.Date == day {
				balance = applyDelta(balance, tx)
			}
		}

		rule, ok := b.rules.effectiveOn(day)
		if !ok {
			continue
		}
		total = total.Add(balance.Mul(rule.Rate).Div(daysPerYearPercent))
	}

	// Half away from zero, at the cent.
	return total.Round(2)
}
