package model

import "github.com/shopspring/decimal"

// Expense is a single named outflow entered during the expense phase.
// Entries only contribute to the running total and are not retained.
type Expense struct {
	Name   string
	Amount decimal.Decimal
}

// Verdict is the qualitative outcome chosen by the sign of the remaining balance.
type Verdict int

const (
	WithinBudget Verdict = iota
	OverBudget
	ExactlySpent
)

func (v Verdict) String() string {
	switch v {
	case WithinBudget:
		return "within-budget"
	case OverBudget:
		return "over-budget"
	case ExactlySpent:
		return "exactly-spent"
	default:
		return "unknown"
	}
}

// Summary holds the end-of-session budget snapshot.
type Summary struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	RemainingBalance decimal.Decimal
	Verdict          Verdict
	Entries          int // accepted expense entries
}

// Deficit returns the absolute shortfall when over budget, zero otherwise.
func (s Summary) Deficit() decimal.Decimal {
	if s.Verdict != OverBudget {
		return decimal.Zero
	}
	return s.RemainingBalance.Abs()
}
