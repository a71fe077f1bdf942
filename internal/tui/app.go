// Package tui provides the interactive Bubble Tea dashboard for splitabill.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/splitabill/internal/assistant"
	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/config"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/session"
	"github.com/theirongolddev/splitabill/internal/tui/components"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabExpenses
	tabDeposits
	tabInsights
	tabAssistant
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5
)

// Options configures a dashboard.
type Options struct {
	Directory *session.Directory
	Config    config.Config
	// Currency overrides the configured display currency when set.
	Currency     string
	StoreOptions []budget.Option
	// SaveConfig persists settings changes. Nil keeps changes in memory.
	SaveConfig func(config.Config) error
	Now        func() time.Time
}

// App is the root Bubble Tea model.
type App struct {
	dir       *session.Directory
	cfg       config.Config
	save      func(config.Config) error
	storeOpts []budget.Option
	now       func() time.Time
	currency  string

	// Active session; nil while the login form is shown.
	sess *session.Session
	bot  *assistant.Assistant

	loginForm *huh.Form
	loginVals *loginValues
	loginErr  string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	// Per-tab state
	expenses expensesState
	deposits depositsState
	chat     chatState
	settings settingsState
}

// NewApp creates the dashboard, starting at the login form.
func NewApp(opts Options) App {
	a := App{
		dir:       opts.Directory,
		cfg:       opts.Config,
		save:      opts.SaveConfig,
		storeOpts: opts.StoreOptions,
		now:       opts.Now,
		currency:  opts.Currency,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.currency == "" {
		a.currency = a.cfg.General.Currency
	}
	theme.SetActive(a.cfg.Appearance.Theme)
	a.resetLogin()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.loginForm != nil {
		cmds = append(cmds, a.loginForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.loginForm != nil {
			a.loginForm = a.loginForm.WithWidth(formWidth(msg.Width))
		}
		if a.expenses.form != nil {
			a.expenses.form = a.expenses.form.WithWidth(formWidth(msg.Width))
		}
		return a, nil

	case tea.MouseMsg:
		if a.sess == nil || a.showHelp || a.expenses.form != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabExpenses && !a.expenses.editing {
				a.expenses.move(-1, len(a.sess.Budget.Expenses()))
			}
		case tea.MouseButtonWheelDown:
			if a.activeTab == tabExpenses && !a.expenses.editing {
				a.expenses.move(1, len(a.sess.Budget.Expenses()))
			}
		case tea.MouseButtonLeft:
			// Tab bar is the first line
			if msg.Y == 0 && !a.inputActive() {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.sess == nil {
			return a.updateLoginForm(msg)
		}

		if a.expenses.form != nil {
			return a.updateExpenseForm(msg)
		}

		// Text inputs own the keyboard while focused
		if a.inputActive() {
			return a.updateInput(msg)
		}

		a.flash = ""

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "L":
			return a, a.logout()
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		}

		var (
			handled bool
			cmd     tea.Cmd
		)
		switch a.activeTab {
		case tabExpenses:
			a, cmd, handled = a.updateExpensesKey(key)
		case tabDeposits:
			a, cmd, handled = a.updateDepositsKey(key)
		case tabAssistant:
			a, cmd, handled = a.updateAssistantKey(key)
		case tabSettings:
			a, cmd, handled = a.updateSettingsKey(key)
		}
		if handled {
			return a, cmd
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward cursor blinks and form internals
	if a.sess == nil && a.loginForm != nil {
		return a.updateLoginForm(msg)
	}
	if a.expenses.form != nil {
		return a.updateExpenseForm(msg)
	}
	return a, nil
}

// inputActive reports whether a single-line text input has focus.
func (a App) inputActive() bool {
	return a.expenses.editing || a.deposits.editing || a.chat.typing
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.expenses.editing:
		return a.updateActualInput(msg)
	case a.deposits.editing:
		return a.updateDepositInput(msg)
	default:
		return a.updateChatInput(msg)
	}
}

// startSession opens a session for u and resets all per-session UI state.
func (a *App) startSession(u session.User) {
	cur, err := currency.Lookup(a.currency)
	if err != nil {
		cur = currency.Default()
	}
	a.sess = session.Start(u, cur, a.storeOpts...)
	a.bot = assistant.New(assistant.WithClock(a.now))
	a.activeTab = tabDashboard
	a.showHelp = false
	a.flash = ""
	a.loginForm = nil
	a.loginErr = ""
	a.expenses = expensesState{}
	a.deposits = depositsState{}
	a.chat = chatState{}
	a.settings = settingsState{}
}

// logout discards the session's budget and returns to the login form.
func (a *App) logout() tea.Cmd {
	if a.sess != nil {
		a.sess.End()
	}
	a.sess = nil
	a.bot = nil
	return a.resetLogin()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.sess == nil {
		return a.viewLogin()
	}

	if a.expenses.form != nil {
		return a.viewExpenseForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  splitabill needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d e p i a x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move through expenses"},
		}},
		{"Expenses", []struct{ key, desc string }{
			{"n", "New expense"},
			{"Enter", "Record amount spent"},
			{"D", "Delete expense"},
		}},
		{"Deposits", []struct{ key, desc string }{
			{"Enter", "Set total deposit"},
			{"P", "Allocate proportionally"},
			{"R", "Allocate by priority"},
			{"A", "Allocate with default policy"},
			{"C", "Clear allocations"},
		}},
		{"General", []struct{ key, desc string }{
			{"Esc", "Cancel input"},
			{"L", "Log out"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.sess.User.Email, a.sess.Currency.Code, a.flash)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabDeposits:
		content = a.renderDepositsTab(cw)
	case tabInsights:
		content = a.renderInsightsTab(cw)
	case tabAssistant:
		content = a.renderAssistantTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func formWidth(termWidth int) int {
	w := termWidth - 8
	if w > 72 {
		w = 72
	}
	if w < 40 {
		w = 40
	}
	return w
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
