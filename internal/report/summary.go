package report

import "time"

// MonthlyReport bundles every derived figure for one calendar month.
// It is the snapshot handed to the HTTP layer and the assistant.
type MonthlyReport struct {
	Period              Period          `json:"period"`
	Totals              Totals          `json:"totals"`
	SavingsRatePercent  float64         `json:"savings_rate_percent"`
	ProjectedSpendCents int64           `json:"projected_spend_cents"`
	Breakdown           []CategoryTotal `json:"breakdown"`
	Goals               []GoalProgress  `json:"goals"`
	Incomes             []Income        `json:"incomes"`
}

// Build derives the full monthly report from a snapshot. The period and
// projection anchor both come from now, so a fixed clock yields a fully
// deterministic report.
func Build(snap Snapshot, now time.Time) MonthlyReport {
	period := PeriodOf(now)
	totals := MonthlyTotals(snap, period)
	breakdown := CategoryBreakdown(snap.Expenses, period)

	incomes := make([]Income, 0, len(snap.Incomes))
	for _, in := range snap.Incomes {
		if period.Contains(in.Date) {
			incomes = append(incomes, in)
		}
	}

	return MonthlyReport{
		Period:              period,
		Totals:              totals,
		SavingsRatePercent:  SavingsRate(totals.IncomeCents, totals.BalanceCents),
		ProjectedSpendCents: ProjectedSpend(totals.ExpenseCents, now),
		Breakdown:           breakdown,
		Goals:               GoalStatus(breakdown, snap.Goals),
		Incomes:             incomes,
	}
}
