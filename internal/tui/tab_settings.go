package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/config"
	"github.com/theirongolddev/splitabill/internal/contact"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/tui/components"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldCurrency = iota
	settingsFieldTheme
	settingsFieldPolicy
	settingsFieldReorder
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	saved   bool  // flash "saved" message after a change
	saveErr error // non-nil if last save failed
}

func (a App) updateSettingsKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter", " ", "l":
		a.cycleSetting(1)
	case "h":
		a.cycleSetting(-1)
	default:
		return a, nil, false
	}
	return a, nil, true
}

// cycleSetting steps the selected field through its choices and saves.
func (a *App) cycleSetting(step int) {
	switch a.settings.cursor {
	case settingsFieldCurrency:
		all := currency.All()
		i := currency.Index(a.sess.Currency.Code)
		next := all[((i+step)%len(all)+len(all))%len(all)]
		if err := a.sess.SetCurrency(next.Code); err != nil {
			a.settings.saveErr = err
			return
		}
		a.currency = next.Code
		a.cfg.General.Currency = next.Code
	case settingsFieldTheme:
		name := theme.Next(theme.Active.Name)
		if step < 0 {
			for range len(theme.All) - 2 {
				name = theme.Next(name)
			}
		}
		theme.SetActive(name)
		a.cfg.Appearance.Theme = name
	case settingsFieldPolicy:
		if a.cfg.General.DefaultPolicy == string(budget.PolicyPriority) {
			a.cfg.General.DefaultPolicy = string(budget.PolicyProportional)
		} else {
			a.cfg.General.DefaultPolicy = string(budget.PolicyPriority)
		}
	case settingsFieldReorder:
		a.cfg.Budget.ReorderOnPriority = !a.cfg.Budget.ReorderOnPriority
	}

	a.settings.saveErr = nil
	if a.save != nil {
		a.settings.saveErr = a.save(a.cfg)
	}
	a.settings.saved = a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	fields := []struct{ label, value string }{
		{"Currency", a.sess.Currency.Label()},
		{"Theme", theme.Active.Name},
		{"Default policy", a.cfg.General.DefaultPolicy},
		{"Reorder on priority", strconv.FormatBool(a.cfg.Budget.ReorderOnPriority) + " (next sign-in)"},
	}

	innerW := components.CardInnerWidth(cw)
	var form strings.Builder
	for i, f := range fields {
		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-22s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			form.WriteString(marker + label + value)
			if pad := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			form.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			form.WriteString(labelStyle.Render(fmt.Sprintf("%-22s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		form.WriteString("\n")
		form.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(greenStyle.Render("Saved!"))
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navigate  [Enter/l] next value  [h] previous value"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Signed in as:  ") + valueStyle.Render(a.sess.User.Name+" <"+a.sess.User.Email+">") + "\n")
	info.WriteString(labelStyle.Render("Session:       ") + valueStyle.Render("started "+a.sess.StartedAt.Format("15:04")+", budget is discarded on logout") + "\n")
	info.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(config.ConfigPath()))

	var help strings.Builder
	for _, c := range contact.Channels() {
		help.WriteString(labelStyle.Render(fmt.Sprintf("%-10s ", c.Kind)) + valueStyle.Render(c.Label+"  "+c.URL) + "\n")
	}
	for _, p := range contact.PaymentApps() {
		help.WriteString(labelStyle.Render(fmt.Sprintf("%-10s ", p.Name)) + valueStyle.Render(p.DeepLink+"  "+p.FallbackURL) + "\n")
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", form.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Account", info.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Support & Payments", strings.TrimRight(help.String(), "\n"), cw))

	return b.String()
}
