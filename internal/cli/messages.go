package cli

import "fmt"

// Fixed user-facing strings.
const (
	BannerRule   = "----------------------------------------------"
	WelcomeTitle = "     Welcome to Your Personal Budget Tracker! "
	FarewellText = "Thank you for using the Personal Budget Tracker!"

	IncomePrompt   = "Please enter your total monthly income (e.g., 2500.50): "
	InvalidIncome  = "Invalid input. Please enter a numerical value for income."
	NegativeIncome = "Income cannot be negative. Please enter a positive value."

	ExpenseHeader   = "Now, let's add your expenses. Enter 'done' when you are finished."
	NamePrompt      = "Enter expense name (or type 'done' to finish): "
	EmptyName       = "Expense name cannot be empty. Please enter a name."
	InvalidAmount   = "Invalid input. Please enter a numerical value for the expense amount."
	NegativeExpense = "Expense amount cannot be negative. Please enter a positive value."

	SummaryTitle = "--- Budget Summary ---"
	SummaryRule  = "----------------------"
)

// AmountPrompt asks for the amount of the named expense. The name is
// inserted verbatim.
func AmountPrompt(name string) string {
	return fmt.Sprintf("Enter amount for '%s': ", name)
}
