package entity

import (
	"math"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Summary messages, chosen by the sign of the unclamped savings
const (
	MessageSavings     = "You have savings."
	MessageZeroSavings = "Your savings are 0"
	MessageDeficit     = "Your expenses exceed your income."
)

// Summary aggregates an owner's transactions over a date range
type Summary struct {
	TotalIncome   float64
	TotalExpenses float64
	Savings       float64 // Never negative; a deficit is reported through Message
	Message       string
}

// Summarize totals income and expenses. Transactions of any other kind are skipped.
// A total beyond the float64 range is reported as ErrSummaryOverflow.
func Summarize(transactions []*Transaction) (*Summary, error) {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, tx := range transactions {
		switch {
		case tx.IsIncome():
			income = income.Add(decimal.NewFromFloat(tx.Amount))
		case tx.IsExpense():
			expenses = expenses.Add(decimal.NewFromFloat(tx.Amount))
		}
	}

	savings := income.Sub(expenses)

	var message string
	switch savings.Sign() {
	case 1:
		message = MessageSavings
	case 0:
		message = MessageZeroSavings
	default:
		message = MessageDeficit
	}

	summary := &Summary{
		TotalIncome:   income.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
		Savings:       decimal.Max(savings, decimal.Zero).InexactFloat64(),
		Message:       message,
	}
	for _, total := range []float64{summary.TotalIncome, summary.TotalExpenses, summary.Savings} {
		if math.IsInf(total, 0) {
			return nil, errs.ErrSummaryOverflow
		}
	}
	return summary, nil
}
