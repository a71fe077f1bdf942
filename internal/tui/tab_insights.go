package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/model"
	"github.com/theirongolddev/splitabill/internal/tui/components"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderInsightsTab(cw int) string {
	t := theme.Active
	rec := a.sess.Budget.Record()
	sum := budget.Summarize(rec)
	cur := a.sess.Currency
	innerW := components.CardInnerWidth(cw)
	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Utilization", Value: cli.FormatPercent(sum.AllocationPercentage), Detail: budget.UtilizationLevel(sum.AllocationPercentage)},
		{Label: "Efficiency", Value: cli.FormatPercent(sum.SpendingEfficiency), Detail: budget.EfficiencyLevel(sum.SpendingEfficiency)},
		{Label: "Over Budget", Value: fmt.Sprintf("%d", sum.OverBudgetCount), Detail: "spent more than allocated", Tone: t.Red},
		{Label: "Fully Funded", Value: fmt.Sprintf("%d", sum.FullyFundedCount), Detail: fmt.Sprintf("of %d expenses", sum.ExpenseCount), Tone: t.Green},
	}, cw))
	b.WriteString("\n")

	// Category rollup
	cats := budget.CategoryRollup(rec)
	if len(cats) > 0 {
		bars := make([]components.Bar, 0, len(cats))
		for i, c := range cats {
			bars = append(bars, components.Bar{
				Label: fmt.Sprintf("%s (%d)", c.Category, c.Count),
				Value: c.Allocated,
				Text:  cli.FormatMoney(cur, c.Allocated) + " alloc · " + cli.FormatMoney(cur, c.Actual) + " spent",
				Color: t.SeriesColor(i),
			})
		}
		b.WriteString(components.ContentCard("By Category", components.BarChart(bars, t.Accent, innerW), cw))
		b.WriteString("\n")

		spend := make([]float64, 0, len(rec.Expenses))
		for _, e := range rec.Expenses {
			spend = append(spend, e.ActualAmount)
		}
		line := components.Sparkline(spend, t.Magenta)
		b.WriteString(components.ContentCard("Spend per Expense", line, cw))
		b.WriteString("\n")
	}

	// Recommendations
	recs := budget.Recommend(rec)
	var rb strings.Builder
	if len(recs) == 0 {
		rb.WriteString(lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface).Bold(true).Render(budget.NoRecommendations))
	}
	for i, r := range recs {
		if i > 0 {
			rb.WriteString("\n")
		}
		rb.WriteString(recommendationStyle(r.Kind).Render(r.Title))
		rb.WriteString("\n")
		rb.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Width(innerW).Render(r.Description))
		rb.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Recommendations", strings.TrimRight(rb.String(), "\n"), cw))

	over := budget.OverBudget(rec)
	if len(over) > 0 {
		var ob strings.Builder
		for _, e := range over {
			fmt.Fprintf(&ob, "%s  %s over\n", e.Name, cli.FormatMoney(cur, e.ActualAmount-e.AllocatedAmount))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Over Budget",
			lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Render(strings.TrimRight(ob.String(), "\n")), cw))
	}

	return b.String()
}

func recommendationStyle(kind model.RecommendationKind) lipgloss.Style {
	t := theme.Active
	color := t.Blue
	switch kind {
	case model.KindWarning:
		color = t.Yellow
	case model.KindAlert:
		color = t.Red
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
}
