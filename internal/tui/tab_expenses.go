package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/model"
	"github.com/theirongolddev/splitabill/internal/tui/components"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// expensesState tracks the expenses tab: list cursor, the inline
// actual-spend input and the new-expense form.
type expensesState struct {
	cursor  int
	editing bool
	input   textinput.Model

	form *huh.Form
	vals *expenseValues
}

type expenseValues struct {
	name     string
	category string
	planned  string
	due      string
}

func (s *expensesState) move(delta, n int) {
	s.cursor += delta
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// selectedExpense returns the expense under the cursor in display order.
func (a App) selectedExpense() (model.Expense, bool) {
	list := a.sess.Budget.DisplayOrder()
	if a.expenses.cursor < 0 || a.expenses.cursor >= len(list) {
		return model.Expense{}, false
	}
	return list[a.expenses.cursor], true
}

func (a App) updateExpensesKey(key string) (App, tea.Cmd, bool) {
	n := len(a.sess.Budget.Expenses())

	switch key {
	case "j", "down":
		a.expenses.move(1, n)
	case "k", "up":
		a.expenses.move(-1, n)
	case "g", "home":
		a.expenses.cursor = 0
	case "G", "end":
		a.expenses.move(n, n)
	case "n":
		a.expenses.vals = &expenseValues{}
		a.expenses.form = newExpenseForm(a.expenses.vals)
		if a.width > 0 {
			a.expenses.form = a.expenses.form.WithWidth(formWidth(a.width))
		}
		return a, a.expenses.form.Init(), true
	case "D", "delete":
		e, ok := a.selectedExpense()
		if !ok {
			return a, nil, true
		}
		if a.sess.Budget.RemoveExpense(e.ID) {
			a.flash = "Removed " + e.Name
		}
		a.expenses.move(0, n-1)
	case "enter":
		e, ok := a.selectedExpense()
		if !ok {
			return a, nil, true
		}
		ti := textinput.New()
		ti.Placeholder = "amount spent"
		ti.CharLimit = 24
		ti.Width = 20
		ti.Prompt = a.sess.Currency.Symbol + " "
		if e.ActualAmount > 0 {
			ti.Placeholder = strconv.FormatFloat(e.ActualAmount, 'f', -1, 64)
		}
		ti.Focus()
		a.expenses.input = ti
		a.expenses.editing = true
		return a, textinput.Blink, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) updateActualInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.expenses.editing = false
		e, ok := a.selectedExpense()
		if !ok || strings.TrimSpace(a.expenses.input.Value()) == "" {
			return a, nil
		}
		amount := budget.ParseAmount(a.expenses.input.Value())
		if a.sess.Budget.RecordActual(e.ID, amount) {
			a.flash = fmt.Sprintf("Recorded %s spent on %s", cli.FormatMoney(a.sess.Currency, amount), e.Name)
		}
		return a, nil
	case "esc":
		a.expenses.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.expenses.input, cmd = a.expenses.input.Update(msg)
	return a, cmd
}

func newExpenseForm(vals *expenseValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Expense name").
				Placeholder("Rent").
				Validate(required("Name")).
				Value(&vals.name),
			huh.NewInput().
				Title("Category").
				Placeholder(budget.DefaultCategory).
				Value(&vals.category),
			huh.NewInput().
				Title("Planned amount").
				Placeholder("0.00").
				Validate(required("Planned amount")).
				Value(&vals.planned),
			huh.NewInput().
				Title("Due date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&vals.due),
		).Title("Add Expense").
			Description("Priority is assigned from the name and category."),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func (a App) updateExpenseForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.expenses.form = nil
		return a, nil
	}

	form, cmd := a.expenses.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.expenses.form = f
	}

	switch a.expenses.form.State {
	case huh.StateCompleted:
		v := *a.expenses.vals
		a.expenses.form = nil
		e, added := a.sess.Budget.AddExpense(budget.ExpenseInput{
			Name:     v.name,
			Category: v.category,
			Planned:  v.planned,
			DueDate:  v.due,
		})
		if added {
			a.flash = fmt.Sprintf("Added %s (%s priority)", e.Name, e.Priority)
		}
		return a, nil
	case huh.StateAborted:
		a.expenses.form = nil
		return a, nil
	}

	return a, cmd
}

func (a App) viewExpenseForm() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Render("Esc to cancel")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.expenses.form.View()+"\n"+hint))
}

func (a App) renderExpensesTab(cw, h int) string {
	t := theme.Active
	cur := a.sess.Currency
	list := a.sess.Budget.DisplayOrder()
	innerW := components.CardInnerWidth(cw)

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if len(list) == 0 {
		body := mutedStyle.Render("No expenses yet.") + "\n\n" +
			dimStyle.Render("[n] add an expense. Rent, utilities and groceries are treated as high priority.")
		return components.ContentCard("Expenses", body, cw)
	}

	nameW := innerW - 8 - 4*13 - 12
	if nameW > 28 {
		nameW = 28
	}
	if nameW < 10 {
		nameW = 10
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	row := func(name, prio, cat, planned, alloc, actual, due string) string {
		return fmt.Sprintf("%-*s %-6s %-12s %12s %12s %12s  %-10s",
			nameW, truncStr(name, nameW), prio, truncStr(cat, 12), planned, alloc, actual, due)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("  " + row("Name", "Prio", "Category", "Planned", "Allocated", "Spent", "Due")))
	b.WriteString("\n")

	// Keep the cursor visible
	visible := h - 8
	if visible < 3 {
		visible = 3
	}
	offset := 0
	if a.expenses.cursor >= visible {
		offset = a.expenses.cursor - visible + 1
	}
	end := offset + visible
	if end > len(list) {
		end = len(list)
	}

	for i := offset; i < end; i++ {
		e := list[i]
		line := row(e.Name, string(e.Priority), e.Category,
			cli.FormatMoney(cur, e.PlannedAmount),
			cli.FormatMoney(cur, e.AllocatedAmount),
			cli.FormatMoney(cur, e.ActualAmount),
			e.DueDate)
		switch {
		case i == a.expenses.cursor:
			b.WriteString(selStyle.Render("▸ " + line))
		case e.ActualAmount > e.AllocatedAmount:
			b.WriteString(overStyle.Render("  " + line))
		default:
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if a.expenses.editing {
		if e, ok := a.selectedExpense(); ok {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("Spent on " + e.Name + ": "))
			b.WriteString(a.expenses.input.View())
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("[j/k] move  [n] new  [Enter] record spend  [D] delete"))

	title := fmt.Sprintf("Expenses (%d)", len(list))
	if sel, ok := a.selectedExpense(); ok {
		c := budget.Classify(sel.Name, sel.Category)
		if c.Term != "" {
			title += fmt.Sprintf(" · %s is %s priority via %q", sel.Name, c.Priority, c.Term)
		}
	}
	return components.ContentCard(title, b.String(), cw)
}
