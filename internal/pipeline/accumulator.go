package pipeline

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/budget/internal/model"
)

// ErrNegativeExpense is returned by Add for amounts below zero.
var ErrNegativeExpense = errors.New("expense amount cannot be negative")

// Accumulator keeps the running sum of accepted expense amounts.
// The zero value is ready to use. The total never goes below zero.
type Accumulator struct {
	total decimal.Decimal
	count int
}

// Add folds an expense into the running total. Negative amounts are
// rejected and leave the accumulator untouched.
func (a *Accumulator) Add(e model.Expense) error {
	if e.Amount.IsNegative() {
		return ErrNegativeExpense
	}
	a.total = a.total.Add(e.Amount)
	a.count++
	return nil
}

// Total returns the sum of all accepted amounts.
func (a *Accumulator) Total() decimal.Decimal {
	return a.total
}

// Count returns how many expenses were accepted.
func (a *Accumulator) Count() int {
	return a.count
}

// Summarize computes the remaining balance and picks the verdict by strict
// sign comparison.
func Summarize(income decimal.Decimal, acc *Accumulator) model.Summary {
	s := model.Summary{
		TotalIncome:   income,
		TotalExpenses: acc.Total(),
		Entries:       acc.Count(),
	}
	s.RemainingBalance = s.TotalIncome.Sub(s.TotalExpenses)

	switch s.RemainingBalance.Sign() {
	case 1:
		s.Verdict = model.WithinBudget
	case -1:
		s.Verdict = model.OverBudget
	default:
		s.Verdict = model.ExactlySpent
	}
	return s
}
