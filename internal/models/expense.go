package models

import "github.com/google/uuid"

// ExpenseEntry is a single expense line inside the shared ledger.
type ExpenseEntry struct {
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

// ExpenseLedger is the single shared expense document:
// year → month name → entries.
type ExpenseLedger map[string]map[string][]ExpenseEntry

// TotalForYear sums every entry recorded under the given year.
func (l ExpenseLedger) TotalForYear(year string) float64 {
	var total float64
	for _, entries := range l[year] {
		for _, e := range entries {
			total += e.Amount
		}
	}
	return total
}

// FinanceSummary reports donations against expenses for one year.
type FinanceSummary struct {
	Year           string  `json:"year"`
	TotalDonations float64 `json:"total_donations"`
	TotalExpenses  float64 `json:"total_expenses"`
	Balance        float64 `json:"balance"`
}
