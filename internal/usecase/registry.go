package usecase

import (
	"sort"

	"gic-bank/internal/domain"
)

// ruleRegistry is the ordered set of effective-dated annual interest rates.
// The slice is kept ascending by effective date at all times.
type ruleRegistry struct {
	rules []domain.InterestRule
}

// upsert inserts rule, replacing any existing rule that shares its effective
// date. Last write wins on the date, regardless of rule id.
func (r *ruleRegistry) upsert(rule domain.InterestRule) {
	kept := make([]domain.InterestRule, 0, len(r.rules)+1)
	for _, existing := range r.rules {
		if existing.Date != rule.Date {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, rule)
	sort.Slice(kept, func(i, j int) bool { return kept[i].Date < kept[j].Date })
	r.rules = kept
}

// snapshot returns a copy of all rules, ascending by effective date.
func (r *ruleRegistry) snapshot() []domain.InterestRule {
	out := make([]domain.InterestRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// effectiveOn returns the rule with the greatest effective date <= day. When
// no rule has taken effect yet, ok is false and no interest accrues.
func (r *ruleRegistry) effectiveOn(day string) (rule domain.InterestRule, ok bool) {
	for i := len(r.rules) - 1; i >= 0; i-- {
		if r.rules[i].Date <= day {
			return r.rules[i], true
		}
	}
	return domain.InterestRule{}, false
}
