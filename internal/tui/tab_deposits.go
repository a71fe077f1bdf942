package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/tui/components"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type depositsState struct {
	editing bool
	input   textinput.Model
}

func (a App) updateDepositsKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "enter":
		ti := textinput.New()
		ti.Placeholder = "total deposit"
		ti.CharLimit = 24
		ti.Width = 20
		ti.Prompt = a.sess.Currency.Symbol + " "
		// The current amount is a hint only; typing replaces it.
		if d := a.sess.Budget.Record().TotalDeposit; d > 0 {
			ti.Placeholder = strconv.FormatFloat(d, 'f', -1, 64)
		}
		ti.Focus()
		a.deposits.input = ti
		a.deposits.editing = true
		return a, textinput.Blink, true
	case "P":
		a.runPolicy(budget.PolicyProportional)
	case "R":
		a.runPolicy(budget.PolicyPriority)
	case "A":
		p, err := budget.ParsePolicy(a.cfg.General.DefaultPolicy)
		if err != nil {
			p = budget.PolicyProportional
		}
		a.runPolicy(p)
	case "C":
		a.sess.Budget.ClearAllocations()
		a.flash = "Allocations cleared"
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) runPolicy(p budget.Policy) {
	if a.sess.Budget.Allocate(p) {
		a.flash = fmt.Sprintf("Allocated by %s", p)
		return
	}
	a.flash = "Nothing to allocate: set a deposit and add expenses first"
}

func (a App) updateDepositInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.deposits.editing = false
		if strings.TrimSpace(a.deposits.input.Value()) == "" {
			return a, nil
		}
		amount := budget.ParseAmount(a.deposits.input.Value())
		a.sess.Budget.SetDeposit(amount)
		a.flash = "Deposit set to " + cli.FormatMoney(a.sess.Currency, amount)
		return a, nil
	case "esc":
		a.deposits.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.deposits.input, cmd = a.deposits.input.Update(msg)
	return a, cmd
}

func (a App) renderDepositsTab(cw int) string {
	t := theme.Active
	rec := a.sess.Budget.Record()
	sum := budget.Summarize(rec)
	cur := a.sess.Currency

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var dep strings.Builder
	dep.WriteString(labelStyle.Render("Total deposit  "))
	if a.deposits.editing {
		dep.WriteString(a.deposits.input.View())
	} else {
		dep.WriteString(valueStyle.Render(cli.FormatMoney(cur, rec.TotalDeposit)))
	}
	dep.WriteString("\n")
	dep.WriteString(labelStyle.Render("Planned        "))
	dep.WriteString(valueStyle.Render(cli.FormatMoney(cur, sum.TotalPlanned)))
	dep.WriteString("\n")
	dep.WriteString(labelStyle.Render("Remaining      "))
	dep.WriteString(valueStyle.Render(cli.FormatMoney(cur, rec.RemainingAmount)))
	dep.WriteString("\n\n")
	dep.WriteString(healthStyle(budget.HealthOf(rec).State).Render(cli.HealthText(cur, budget.HealthOf(rec))))
	dep.WriteString("\n\n")
	if a.deposits.editing {
		dep.WriteString(dimStyle.Render("[Enter] save  [Esc] cancel"))
	} else {
		dep.WriteString(dimStyle.Render("[Enter] set deposit"))
	}

	policies := []struct{ key, name, desc string }{
		{"P", "Proportional", "Each expense gets deposit × planned / total planned."},
		{"R", "Priority", "High, then medium, then low; each funded in full while money lasts."},
		{"A", "Default (" + a.cfg.General.DefaultPolicy + ")", "Runs the policy from your settings."},
		{"C", "Clear", "Zero every allocation and return the deposit to remaining."},
	}
	var pol strings.Builder
	for _, p := range policies {
		pol.WriteString(keyStyle.Render("[" + p.key + "] "))
		pol.WriteString(valueStyle.Render(p.name))
		pol.WriteString("\n")
		pol.WriteString(dimStyle.Render("    " + p.desc))
		pol.WriteString("\n")
	}

	var b strings.Builder
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Deposit", dep.String(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Allocation Policies", pol.String(), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Deposit", dep.String(), halves[0]),
			components.ContentCard("Allocation Policies", pol.String(), halves[1]),
		}))
	}
	b.WriteString("\n")

	// Allocation preview in display order
	list := a.sess.Budget.DisplayOrder()
	if len(list) > 0 {
		bars := make([]components.Bar, 0, len(list))
		for _, e := range list {
			bars = append(bars, components.Bar{
				Label: fmt.Sprintf("%s (%s)", e.Name, e.Priority),
				Value: e.AllocatedAmount,
				Text:  cli.FormatMoney(cur, e.AllocatedAmount) + " / " + cli.FormatMoney(cur, e.PlannedAmount),
				Color: t.PriorityColor(e.Priority),
			})
		}
		b.WriteString(components.ContentCard("Current Allocation",
			components.BarChart(bars, t.Blue, components.CardInnerWidth(cw)), cw))
	}

	return b.String()
}
