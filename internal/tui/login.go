package tui

import (
	"strings"

	"github.com/theirongolddev/splitabill/internal/session"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	loginModeSignIn = "signin"
	loginModeSignUp = "signup"
	loginModeDemo   = "demo"
)

// loginValues holds the login form's bound fields. It lives on the heap so
// the form keeps pointing at it while App is copied by value.
type loginValues struct {
	mode     string
	name     string
	email    string
	password string
	confirm  string
}

func newLoginForm(vals *loginValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Welcome to SPLITABILL").
				Description("Split your deposit across the bills that matter.").
				Options(
					huh.NewOption("Sign in", loginModeSignIn),
					huh.NewOption("Create an account", loginModeSignUp),
					huh.NewOption("Try the demo account", loginModeDemo),
				).
				Value(&vals.mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder(session.DemoEmail).
				Value(&vals.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.password),
		).WithHideFunc(func() bool { return vals.mode != loginModeSignIn }),
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&vals.name),
			huh.NewInput().
				Title("Email").
				Value(&vals.email),
			huh.NewInput().
				Title("Password").
				Description("At least 6 characters.").
				EchoMode(huh.EchoModePassword).
				Value(&vals.password),
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.confirm),
		).WithHideFunc(func() bool { return vals.mode != loginModeSignUp }),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

// resetLogin replaces the login form with a fresh one.
func (a *App) resetLogin() tea.Cmd {
	a.loginVals = &loginValues{mode: loginModeSignIn}
	a.loginForm = newLoginForm(a.loginVals)
	if a.width > 0 {
		a.loginForm = a.loginForm.WithWidth(formWidth(a.width))
	}
	return a.loginForm.Init()
}

func (a App) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.loginForm == nil {
		return a, a.resetLogin()
	}

	form, cmd := a.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.loginForm = f
	}

	switch a.loginForm.State {
	case huh.StateCompleted:
		if err := a.authenticate(*a.loginVals); err != nil {
			a.loginErr = err.Error()
			return a, a.resetLogin()
		}
		return a, nil
	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

// authenticate resolves the form values against the directory and starts a
// session on success.
func (a *App) authenticate(v loginValues) error {
	var (
		u   session.User
		err error
	)
	switch v.mode {
	case loginModeDemo:
		u, err = a.dir.Demo()
	case loginModeSignUp:
		u, err = a.dir.Register(v.name, v.email, v.password, v.confirm)
	default:
		u, err = a.dir.Authenticate(v.email, v.password)
	}
	if err != nil {
		return err
	}
	a.startSession(u)
	a.flash = "Welcome, " + firstName(u.Name) + "!"
	return nil
}

func (a App) viewLogin() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ SPLITABILL"))
	b.WriteString(subtitleStyle.Render(" · Budget Allocation"))
	b.WriteString("\n\n")
	if a.loginErr != "" {
		b.WriteString(errStyle.Render(a.loginErr))
		b.WriteString("\n\n")
	}
	if a.loginForm != nil {
		b.WriteString(a.loginForm.View())
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Demo: " + session.DemoEmail + " / demo123"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

func firstName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return name
}
