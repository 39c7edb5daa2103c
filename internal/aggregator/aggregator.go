// Package aggregator computes dashboard totals and the category breakdown
// from a list of transactions. Everything here is pure: no I/O, no clock,
// and the input slice is never modified.
package aggregator

import (
	"github.com/shopspring/decimal"

	"moneymanager/internal/models"
)

// Filter restricts the transaction list. Zero fields match everything.
type Filter struct {
	Division models.Division `json:"division,omitempty"`
	Category string          `json:"category,omitempty"`
}

// Matches reports whether t passes both filters.
func (f Filter) Matches(t models.Transaction) bool {
	if f.Division != "" && t.Division != f.Division {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// CategoryTotal is one slice of the outflow breakdown.
type CategoryTotal struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ChartBar is one bar of the income vs expense chart.
type ChartBar struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Summary is the result of Aggregate.
type Summary struct {
	TotalIncome  decimal.Decimal      `json:"total_income"`
	TotalExpense decimal.Decimal      `json:"total_expense"`
	Balance      decimal.Decimal      `json:"balance"`
	Transactions []models.Transaction `json:"transactions"`
	Breakdown    []CategoryTotal      `json:"breakdown"`
}

// Aggregate computes the global totals over all transactions and derives the
// filtered list and the category breakdown from the same input.
//
// Totals ignore the filter: income counts kind income, expense counts kinds
// expense and p2p, deposits and transfers count towards neither. Balance is
// income minus expense. The breakdown sums outflows of the filtered list by
// category, skipping empty categories, in order of first occurrence.
func Aggregate(transactions []models.Transaction, filter Filter) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch {
		case t.Type == models.KindIncome:
			income = income.Add(t.Amount)
		case t.Type.IsOutflow():
			expense = expense.Add(t.Amount)
		}
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filter.Matches(t) {
			filtered = append(filtered, t)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Transactions: filtered,
		Breakdown:    Breakdown(filtered),
	}
}

// Breakdown sums outflow amounts per category in first-occurrence order.
func Breakdown(transactions []models.Transaction) []CategoryTotal {
	totals := make([]CategoryTotal, 0)
	index := make(map[string]int)
	for _, t := range transactions {
		if !t.Type.IsOutflow() || t.Category == "" {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(totals)
			index[t.Category] = i
			totals = append(totals, CategoryTotal{Name: t.Category, Value: decimal.Zero})
		}
		totals[i].Value = totals[i].Value.Add(t.Amount)
	}
	return totals
}

// Chart returns the income and expense bars.
func (s Summary) Chart() []ChartBar {
	return []ChartBar{
		{Name: "Income", Amount: s.TotalIncome},
		{Name: "Expense", Amount: s.TotalExpense},
	}
}
