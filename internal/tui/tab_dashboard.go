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

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	rec := a.sess.Budget.Record()
	sum := budget.Summarize(rec)
	cur := a.sess.Currency
	var b strings.Builder

	greetStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Background).Bold(true)
	b.WriteString(greetStyle.Render(fmt.Sprintf(" %s, %s!", cli.Greeting(a.now()), firstName(a.sess.User.Name))))
	b.WriteString("\n")

	remainingTone := t.Green
	if sum.Remaining < 0 {
		remainingTone = t.Red
	}
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Total Deposit", Value: cli.FormatMoney(cur, sum.TotalDeposit), Detail: fmt.Sprintf("%d expenses", sum.ExpenseCount)},
		{Label: "Allocated", Value: cli.FormatMoney(cur, sum.TotalAllocated), Detail: cli.FormatPercent(sum.AllocationPercentage) + " of deposit", Tone: t.Blue},
		{Label: "Spent", Value: cli.FormatMoney(cur, sum.TotalActual), Detail: cli.FormatPercent(sum.SpendingEfficiency) + " of allocated", Tone: t.Magenta},
		{Label: "Remaining", Value: cli.FormatMoney(cur, sum.Remaining), Detail: fmt.Sprintf("%d high priority", sum.HighPriorityCount), Tone: remainingTone},
	}, cw))
	b.WriteString("\n")

	// Budget health
	innerW := components.CardInnerWidth(cw)
	barW := innerW - 30
	if barW < 10 {
		barW = 10
	}
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var health strings.Builder
	health.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", "Overall allocation")))
	health.WriteString(components.ProgressBar(sum.AllocationPercentage/100, barW))
	health.WriteString(spaceStyle.Render("  "))
	health.WriteString(valueStyle.Render(budget.UtilizationLevel(sum.AllocationPercentage)))
	health.WriteString("\n")
	health.WriteString(labelStyle.Render(fmt.Sprintf("%-20s", "Spending efficiency")))
	health.WriteString(components.ProgressBar(sum.SpendingEfficiency/100, barW))
	health.WriteString(spaceStyle.Render("  "))
	health.WriteString(valueStyle.Render(budget.EfficiencyLevel(sum.SpendingEfficiency)))
	health.WriteString("\n\n")
	health.WriteString(healthStyle(budget.HealthOf(rec).State).Render(cli.HealthText(cur, budget.HealthOf(rec))))

	b.WriteString(components.ContentCard("Budget Health", health.String(), cw))
	b.WriteString("\n")

	// Funding progress per expense
	b.WriteString(components.ContentCard("Funding Progress", a.renderFundingList(a.sess.Budget.DisplayOrder(), innerW), cw))

	return b.String()
}

func (a App) renderFundingList(expenses []model.Expense, innerW int) string {
	t := theme.Active
	if len(expenses) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
			Render("No expenses yet. Press e, then n to add one.")
	}

	labelW := 18
	if a.isCompactLayout() {
		labelW = 14
	}
	barW := innerW - labelW - 20
	if barW < 10 {
		barW = 10
	}

	lines := make([]string, 0, len(expenses))
	for _, e := range expenses {
		note := ""
		if e.ActualAmount > e.AllocatedAmount {
			note = "over budget"
		}
		lines = append(lines, components.FundingBar(e.Name, budget.FundingProgress(e)/100, note, labelW, barW))
	}
	return strings.Join(lines, "\n")
}

func healthStyle(state model.HealthState) lipgloss.Style {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.HealthColor(state)).Background(t.Surface).Bold(true)
}
