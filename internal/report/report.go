// Package report computes display figures from a snapshot of expenses,
// incomes, and goals. Every function is pure: identical input always
// yields identical output, and nothing here touches storage or clocks.
// All monetary amounts are integer cents.
package report

import (
	"math"
	"sort"
	"time"
)

// Period identifies a calendar month.
type Period struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

// Contains reports whether t falls inside the period's calendar month.
func (p Period) Contains(t time.Time) bool {
	return t.Month() == p.Month && t.Year() == p.Year
}

// Expense is a snapshot expense entry.
type Expense struct {
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
}

// Income is a snapshot income entry.
type Income struct {
	Source      string    `json:"source"`
	AmountCents int64     `json:"amount_cents"`
	Date        time.Time `json:"date"`
}

// Goal is a snapshot advisory category limit.
type Goal struct {
	Category   string `json:"category"`
	LimitCents int64  `json:"limit_cents"`
}

// Snapshot is the input to all aggregate computations. The caller owns
// loading and refreshing it; this package never mutates it.
type Snapshot struct {
	Expenses []Expense `json:"expenses"`
	Incomes  []Income  `json:"incomes"`
	Goals    []Goal    `json:"goals"`
}

// Totals holds the monthly income/expense/balance figures.
type Totals struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	BalanceCents int64 `json:"balance_cents"`
}

// MonthlyTotals sums incomes and expenses dated within the period.
func MonthlyTotals(snap Snapshot, p Period) Totals {
	var t Totals
	for _, e := range snap.Expenses {
		if p.Contains(e.Date) {
			t.ExpenseCents += e.AmountCents
		}
	}
	for _, in := range snap.Incomes {
		if p.Contains(in.Date) {
			t.IncomeCents += in.AmountCents
		}
	}
	t.BalanceCents = t.IncomeCents - t.ExpenseCents
	return t
}

// CategoryTotal is one category's spend within a period.
type CategoryTotal struct {
	Category    string `json:"category"`
	AmountCents int64  `json:"amount_cents"`
}

// CategoryBreakdown groups the period's expenses by category. The result
// is ordered by descending total, ties broken by category name, so ranked
// lists are deterministic.
func CategoryBreakdown(expenses []Expense, p Period) []CategoryTotal {
	byCategory := make(map[string]int64)
	for _, e := range expenses {
		if p.Contains(e.Date) {
			byCategory[e.Category] += e.AmountCents
		}
	}

	breakdown := make([]CategoryTotal, 0, len(byCategory))
	for category, total := range byCategory {
		breakdown = append(breakdown, CategoryTotal{Category: category, AmountCents: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].AmountCents != breakdown[j].AmountCents {
			return breakdown[i].AmountCents > breakdown[j].AmountCents
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// TopCategory returns the highest-spend category of a breakdown.
func TopCategory(breakdown []CategoryTotal) (CategoryTotal, bool) {
	if len(breakdown) == 0 {
		return CategoryTotal{}, false
	}
	return breakdown[0], true
}

// GoalState classifies a goal's consumption.
type GoalState string

const (
	GoalOnTrack    GoalState = "on_track"
	GoalNearLimit  GoalState = "near_limit"
	GoalOverBudget GoalState = "over_budget"
)

// GoalProgress is the consumption status of one advisory goal.
type GoalProgress struct {
	Category   string    `json:"category"`
	LimitCents int64     `json:"limit_cents"`
	SpentCents int64     `json:"spent_cents"`
	Percent    int       `json:"percent"`
	State      GoalState `json:"state"`
}

// GoalStatus computes consumption for each goal against the category
// breakdown. Goals with a non-positive limit carry no meaning and are
// excluded, which also keeps the percentage well defined.
func GoalStatus(breakdown []CategoryTotal, goals []Goal) []GoalProgress {
	spentByCategory := make(map[string]int64, len(breakdown))
	for _, ct := range breakdown {
		spentByCategory[ct.Category] = ct.AmountCents
	}

	progress := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		if g.LimitCents <= 0 {
			continue
		}
		spent := spentByCategory[g.Category]
		percent := int(math.Round(float64(spent) / float64(g.LimitCents) * 100))

		state := GoalOnTrack
		switch {
		case spent > g.LimitCents:
			state = GoalOverBudget
		case percent >= 80:
			state = GoalNearLimit
		}

		progress = append(progress, GoalProgress{
			Category:   g.Category,
			LimitCents: g.LimitCents,
			SpentCents: spent,
			Percent:    percent,
			State:      state,
		})
	}
	return progress
}

// SavingsRate returns the percentage of income kept as balance. With no
// income the rate is defined as 0 so the caller never sees NaN.
func SavingsRate(incomeCents, balanceCents int64) float64 {
	if incomeCents <= 0 {
		return 0
	}
	return float64(balanceCents) / float64(incomeCents) * 100
}

// ProjectedSpend extrapolates month-to-date spending to a full-month
// figure, assuming an even daily rate.
func ProjectedSpend(spentCents int64, now time.Time) int64 {
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	dayOfMonth := now.Day()
	if dayOfMonth == 0 {
		return spentCents
	}
	return spentCents * int64(daysInMonth) / int64(dayOfMonth)
}
