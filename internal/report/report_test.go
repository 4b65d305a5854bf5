package report

import (
	"reflect"
	"testing"
	"time"
)

var (
	march     = Period{Month: time.March, Year: 2026}
	march10   = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	march20   = time.Date(2026, time.March, 20, 18, 30, 0, 0, time.UTC)
	february5 = time.Date(2026, time.February, 5, 12, 0, 0, 0, time.UTC)
)

func TestMonthlyTotals(t *testing.T) {
	snap := Snapshot{
		Expenses: []Expense{
			{Category: "Food & Dining", AmountCents: 12000, Date: march10},
			{Category: "Travel", AmountCents: 30000, Date: march20},
			{Category: "Food & Dining", AmountCents: 9999, Date: february5}, // outside period
		},
		Incomes: []Income{
			{Source: "Salary", AmountCents: 500000, Date: march10},
			{Source: "Bonus", AmountCents: 70000, Date: february5}, // outside period
		},
	}

	totals := MonthlyTotals(snap, march)
	if totals.ExpenseCents != 42000 {
		t.Errorf("expected expenses 42000, got %d", totals.ExpenseCents)
	}
	if totals.IncomeCents != 500000 {
		t.Errorf("expected income 500000, got %d", totals.IncomeCents)
	}
	if totals.BalanceCents != 458000 {
		t.Errorf("expected balance 458000, got %d", totals.BalanceCents)
	}
}

func TestMonthlyTotalsEmpty(t *testing.T) {
	totals := MonthlyTotals(Snapshot{}, march)
	if totals != (Totals{}) {
		t.Errorf("expected zero totals for empty snapshot, got %+v", totals)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	expenses := []Expense{
		{Category: "Travel", AmountCents: 5000, Date: march10},
		{Category: "Food & Dining", AmountCents: 12000, Date: march10},
		{Category: "Travel", AmountCents: 9000, Date: march20},
		{Category: "Shopping", AmountCents: 14000, Date: march20},
		{Category: "Food & Dining", AmountCents: 2000, Date: february5}, // outside period
	}

	breakdown := CategoryBreakdown(expenses, march)

	want := []CategoryTotal{
		{Category: "Shopping", AmountCents: 14000},
		{Category: "Travel", AmountCents: 14000},
		{Category: "Food & Dining", AmountCents: 12000},
	}
	if !reflect.DeepEqual(breakdown, want) {
		t.Errorf("breakdown mismatch:\n got %+v\nwant %+v", breakdown, want)
	}
}

// Equal totals must order by category name so repeated calls never flip
// the ranking.
func TestCategoryBreakdownTieOrder(t *testing.T) {
	expenses := []Expense{
		{Category: "Zoo", AmountCents: 1000, Date: march10},
		{Category: "Art", AmountCents: 1000, Date: march10},
		{Category: "Mid", AmountCents: 1000, Date: march10},
	}

	for i := 0; i < 10; i++ {
		breakdown := CategoryBreakdown(expenses, march)
		if breakdown[0].Category != "Art" || breakdown[1].Category != "Mid" || breakdown[2].Category != "Zoo" {
			t.Fatalf("tie order not deterministic: %+v", breakdown)
		}
	}
}

func TestTopCategory(t *testing.T) {
	if _, ok := TopCategory(nil); ok {
		t.Error("expected no top category for empty breakdown")
	}

	top, ok := TopCategory([]CategoryTotal{
		{Category: "Travel", AmountCents: 9000},
		{Category: "Food & Dining", AmountCents: 1000},
	})
	if !ok || top.Category != "Travel" {
		t.Errorf("expected Travel as top category, got %+v", top)
	}
}

func TestGoalStatus(t *testing.T) {
	breakdown := []CategoryTotal{
		{Category: "Food & Dining", AmountCents: 7900},
		{Category: "Travel", AmountCents: 8000},
		{Category: "Shopping", AmountCents: 10000},
		{Category: "Bills & Utilities", AmountCents: 10001},
	}
	goals := []Goal{
		{Category: "Food & Dining", LimitCents: 10000},
		{Category: "Travel", LimitCents: 10000},
		{Category: "Shopping", LimitCents: 10000},
		{Category: "Bills & Utilities", LimitCents: 10000},
		{Category: "Health", LimitCents: 10000}, // no spend at all
		{Category: "Broken", LimitCents: 0},    // excluded
	}

	progress := GoalStatus(breakdown, goals)
	if len(progress) != 5 {
		t.Fatalf("expected 5 goals (zero-limit excluded), got %d", len(progress))
	}

	byCategory := make(map[string]GoalProgress)
	for _, p := range progress {
		byCategory[p.Category] = p
	}

	if got := byCategory["Food & Dining"]; got.State != GoalOnTrack || got.Percent != 79 {
		t.Errorf("79%% should be on track, got %+v", got)
	}
	if got := byCategory["Travel"]; got.State != GoalNearLimit || got.Percent != 80 {
		t.Errorf("80%% should be near limit, got %+v", got)
	}
	// Spending exactly the limit is near limit, not over.
	if got := byCategory["Shopping"]; got.State != GoalNearLimit || got.Percent != 100 {
		t.Errorf("100%% should be near limit, got %+v", got)
	}
	if got := byCategory["Bills & Utilities"]; got.State != GoalOverBudget {
		t.Errorf("spend above limit should be over budget, got %+v", got)
	}
	if got := byCategory["Health"]; got.State != GoalOnTrack || got.SpentCents != 0 {
		t.Errorf("unspent goal should be on track with 0 spent, got %+v", got)
	}
}

func TestSavingsRate(t *testing.T) {
	if rate := SavingsRate(0, 5000); rate != 0 {
		t.Errorf("zero income must yield rate 0, got %f", rate)
	}
	if rate := SavingsRate(-100, 5000); rate != 0 {
		t.Errorf("negative income must yield rate 0, got %f", rate)
	}
	if rate := SavingsRate(100000, 20000); rate != 20 {
		t.Errorf("expected 20%%, got %f", rate)
	}
	if rate := SavingsRate(100000, -50000); rate != -50 {
		t.Errorf("overspending should yield a negative rate, got %f", rate)
	}
}

func TestProjectedSpend(t *testing.T) {
	// 10 days into a 31-day month at 1000 cents spent.
	now := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := ProjectedSpend(1000, now); got != 3100 {
		t.Errorf("expected projection 3100, got %d", got)
	}

	// Last day of the month projects to exactly the spend so far.
	endOfMonth := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
	if got := ProjectedSpend(12345, endOfMonth); got != 12345 {
		t.Errorf("expected projection to equal spend on the last day, got %d", got)
	}

	if got := ProjectedSpend(0, now); got != 0 {
		t.Errorf("expected 0 projection with no spend, got %d", got)
	}
}

func TestBuildDeterministic(t *testing.T) {
	snap := Snapshot{
		Expenses: []Expense{
			{Category: "Food & Dining", AmountCents: 12000, Date: march10},
			{Category: "Travel", AmountCents: 30000, Date: march20},
		},
		Incomes: []Income{
			{Source: "Salary", AmountCents: 500000, Date: march10},
		},
		Goals: []Goal{
			{Category: "Travel", LimitCents: 40000},
		},
	}
	now := time.Date(2026, time.March, 21, 8, 0, 0, 0, time.UTC)

	first := Build(snap, now)
	for i := 0; i < 5; i++ {
		if got := Build(snap, now); !reflect.DeepEqual(got, first) {
			t.Fatalf("Build is not deterministic:\n got %+v\nwant %+v", got, first)
		}
	}

	if first.Period != march {
		t.Errorf("expected period %v, got %v", march, first.Period)
	}
	if first.Totals.ExpenseCents != 42000 {
		t.Errorf("expected expenses 42000, got %d", first.Totals.ExpenseCents)
	}
	if len(first.Goals) != 1 || first.Goals[0].SpentCents != 30000 {
		t.Errorf("expected travel goal with 30000 spent, got %+v", first.Goals)
	}
	if len(first.Incomes) != 1 {
		t.Errorf("expected 1 income in period, got %d", len(first.Incomes))
	}
}

// Build never mutates its snapshot.
func TestBuildLeavesSnapshotUntouched(t *testing.T) {
	snap := Snapshot{
		Expenses: []Expense{
			{Category: "Travel", AmountCents: 30000, Date: march20},
			{Category: "Food & Dining", AmountCents: 12000, Date: march10},
		},
	}
	before := Snapshot{
		Expenses: append([]Expense(nil), snap.Expenses...),
	}

	Build(snap, march20)

	if !reflect.DeepEqual(snap, before) {
		t.Errorf("Build mutated its input:\n got %+v\nwant %+v", snap, before)
	}
}
