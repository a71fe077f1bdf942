package components

import (
	"strings"

	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left, an
// optional flash message in the middle and the signed-in user on the right.
func RenderStatusBar(width int, user, currencyCode, flash string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	flashStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	left := style.Render(" [?]help  [L]ogout  [q]uit")
	if flash != "" {
		left += style.Render("   ") + flashStyle.Render(flash)
	}

	right := ""
	if user != "" {
		right = style.Render(user + " · " + currencyCode + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + style.Render(strings.Repeat(" ", padding)) + right
}
