// Package cli provides formatting, rendering and prompting for the console session.
package cli

import (
	"github.com/shopspring/decimal"
	"github.com/theirongolddev/budget/internal/model"
)

// FormatMoney renders an amount as "$" followed by the value with exactly two
// fractional digits, rounded half away from zero. Negative values keep their
// sign after the marker, e.g. "$-200.00".
func FormatMoney(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}

// IncomeLine formats the total income row of the summary.
func IncomeLine(s model.Summary) string {
	return "Total Income: " + FormatMoney(s.TotalIncome)
}

// ExpensesLine formats the total expenses row of the summary.
func ExpensesLine(s model.Summary) string {
	return "Total Expenses: " + FormatMoney(s.TotalExpenses)
}

// BalanceLine formats the remaining balance together with its verdict.
func BalanceLine(s model.Summary) string {
	line := "Remaining Balance: " + FormatMoney(s.RemainingBalance)
	switch s.Verdict {
	case model.WithinBudget:
		return line + " (You are within your budget! Keep up the good work!)"
	case model.OverBudget:
		return line + " (You are over budget by " + FormatMoney(s.Deficit()) + ". Consider reducing expenses.)"
	default:
		return line + " (You have spent exactly your income. Good job managing!)"
	}
}
