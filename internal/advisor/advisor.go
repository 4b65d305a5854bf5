// Package advisor generates canned financial answers from a monthly
// report. It is deterministic string templating over keyword matches:
// the same question and report always produce the same answer, and no
// external model is ever consulted.
package advisor

import (
	"fmt"
	"strings"

	"budgetly/internal/report"
)

// Respond picks an answer for the question from the report. Unrecognized
// questions get the help text listing what the assistant can do.
func Respond(question string, rep report.MonthlyReport) string {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, "biggest", "top", "most"):
		return topExpenseAnswer(rep)
	case containsAny(q, "save", "saving"):
		return savingsAnswer(rep)
	case containsAny(q, "analyz", "overview", "summary"):
		return overviewAnswer(rep)
	case containsAny(q, "suggest", "reduce", "tip", "advice"):
		return tipsAnswer(rep)
	case strings.Contains(q, "income"):
		return incomeAnswer(rep)
	case containsAny(q, "budget", "goal"):
		return goalsAnswer(rep)
	default:
		return helpAnswer()
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func topExpenseAnswer(rep report.MonthlyReport) string {
	top, ok := report.TopCategory(rep.Breakdown)
	if !ok {
		return "You don't have any expenses recorded yet. Start tracking to get insights!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your biggest expense category is **%s** at **%s** this month.\n\n", top.Category, formatCents(top.AmountCents))
	b.WriteString("Here's your full breakdown:\n")
	for i, ct := range rep.Breakdown {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, ct.Category, formatCents(ct.AmountCents))
	}
	return b.String()
}

func savingsAnswer(rep report.MonthlyReport) string {
	var b strings.Builder
	b.WriteString("## Savings Summary\n\n")
	fmt.Fprintf(&b, "- **Total Income**: %s\n", formatCents(rep.Totals.IncomeCents))
	fmt.Fprintf(&b, "- **Total Expenses**: %s\n", formatCents(rep.Totals.ExpenseCents))
	fmt.Fprintf(&b, "- **Balance**: %s\n", formatCents(rep.Totals.BalanceCents))
	fmt.Fprintf(&b, "- **Savings Rate**: %.1f%%\n\n", rep.SavingsRatePercent)

	switch {
	case rep.SavingsRatePercent >= 20:
		b.WriteString("Great job! You're saving over 20% of your income!")
	case rep.SavingsRatePercent > 0:
		b.WriteString("Try to aim for saving at least 20% of your income.")
	default:
		b.WriteString("You're spending more than you earn. Consider cutting back on non-essentials.")
	}
	return b.String()
}

func overviewAnswer(rep report.MonthlyReport) string {
	var b strings.Builder
	b.WriteString("## Financial Overview\n\n### Income & Expenses\n")
	fmt.Fprintf(&b, "- Monthly Income: **%s**\n", formatCents(rep.Totals.IncomeCents))
	fmt.Fprintf(&b, "- Monthly Expenses: **%s**\n", formatCents(rep.Totals.ExpenseCents))
	fmt.Fprintf(&b, "- Net Balance: **%s**\n", formatCents(rep.Totals.BalanceCents))
	fmt.Fprintf(&b, "- Savings Rate: **%.1f%%**\n\n", rep.SavingsRatePercent)

	if len(rep.Breakdown) > 0 {
		b.WriteString("### Top Spending Categories\n")
		for i, ct := range rep.Breakdown {
			if i == 5 {
				break
			}
			fmt.Fprintf(&b, "- **%s**: %s\n", ct.Category, formatCents(ct.AmountCents))
		}
		b.WriteString("\n")
	}

	if len(rep.Goals) > 0 {
		b.WriteString("### Budget Status\n")
		for _, g := range rep.Goals {
			fmt.Fprintf(&b, "- **%s**: %s / %s (%d%%) %s\n",
				g.Category, formatCents(g.SpentCents), formatCents(g.LimitCents), g.Percent, stateMarker(g.State))
		}
	}
	return b.String()
}

func tipsAnswer(rep report.MonthlyReport) string {
	var b strings.Builder
	b.WriteString("## Money-Saving Tips\n\n")
	n := 1
	if top, ok := report.TopCategory(rep.Breakdown); ok {
		fmt.Fprintf(&b, "%d. **Reduce %s spending** — it's your biggest expense at %s. Try cutting it by 15%% to save **%s**.\n",
			n, top.Category, formatCents(top.AmountCents), formatCents(top.AmountCents*15/100))
		n++
	}
	fmt.Fprintf(&b, "%d. **Set budget goals** for all categories to track overspending.\n", n)
	fmt.Fprintf(&b, "%d. **Review subscriptions** — many people overspend on recurring services.\n", n+1)
	fmt.Fprintf(&b, "%d. **Use the 50/30/20 rule** — 50%% needs, 30%% wants, 20%% savings.\n", n+2)
	fmt.Fprintf(&b, "%d. **Track daily expenses** — awareness is the first step to better habits.\n", n+3)
	return b.String()
}

func incomeAnswer(rep report.MonthlyReport) string {
	var b strings.Builder
	b.WriteString("## Income Summary\n\n")
	fmt.Fprintf(&b, "- **Total Monthly Income**: %s\n", formatCents(rep.Totals.IncomeCents))
	fmt.Fprintf(&b, "- **Number of sources**: %d\n\n", len(rep.Incomes))
	for _, in := range rep.Incomes {
		fmt.Fprintf(&b, "- **%s**: %s (%s)\n", in.Source, formatCents(in.AmountCents), in.Date.Format("2006-01-02"))
	}
	return b.String()
}

func goalsAnswer(rep report.MonthlyReport) string {
	if len(rep.Goals) == 0 {
		return "You haven't set any budget goals yet. Go to **Budget Goals** to create some!"
	}

	var b strings.Builder
	b.WriteString("## Budget Goals\n\n")
	for _, g := range rep.Goals {
		fmt.Fprintf(&b, "### %s\n", g.Category)
		fmt.Fprintf(&b, "- Budget: %s\n", formatCents(g.LimitCents))
		fmt.Fprintf(&b, "- Spent: %s (%d%%)\n", formatCents(g.SpentCents), g.Percent)
		remaining := g.LimitCents - g.SpentCents
		if remaining >= 0 {
			fmt.Fprintf(&b, "- Remaining: %s\n\n", formatCents(remaining))
		} else {
			fmt.Fprintf(&b, "- Over by: %s\n\n", formatCents(-remaining))
		}
	}
	return b.String()
}

func helpAnswer() string {
	return "I can help you with:\n" +
		"- **Spending analysis** — \"Analyze my spending\"\n" +
		"- **Savings info** — \"How much have I saved?\"\n" +
		"- **Top expenses** — \"What's my biggest expense?\"\n" +
		"- **Saving tips** — \"Suggest ways to save\"\n" +
		"- **Income details** — \"Show my income\"\n" +
		"- **Budget status** — \"How are my budget goals?\"\n\n" +
		"Try asking one of these!"
}

func stateMarker(state report.GoalState) string {
	switch state {
	case report.GoalOverBudget:
		return "(over budget)"
	case report.GoalNearLimit:
		return "(near limit)"
	default:
		return "(on track)"
	}
}

// formatCents renders integer cents as a dollar amount. Display locale
// and currency symbols belong to the presentation layer; this is only
// for the assistant's plain-text answers.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
