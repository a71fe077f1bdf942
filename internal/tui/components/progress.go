package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a block bar for a 0-1 fraction followed by its
// percentage. Fractions above 1 draw a full bar but keep the real percentage.
func ProgressBar(frac float64, width int) string {
	t := theme.Active
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := lipgloss.Color(ColorForFunding(frac))

	filledStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))

	return b.String() + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%.0f%%", frac*100))
}

// ColorForFunding maps a funded or used fraction to a colour: red past
// 100%, then orange, accent and green as the fraction rises toward 1.
func ColorForFunding(frac float64) string {
	t := theme.Active
	switch {
	case frac > 1:
		return string(t.Red)
	case frac >= 0.9:
		return string(t.Green)
	case frac >= 0.5:
		return string(t.Accent)
	case frac > 0:
		return string(t.Orange)
	default:
		return string(t.TextDim)
	}
}

// FundingBar renders a labeled bubbles progress bar for one expense:
// label, bar, percentage and a trailing note such as "over".
func FundingBar(label string, frac float64, note string, labelW, barWidth int) string {
	t := theme.Active

	shown := frac
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForFunding(frac)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForFunding(frac))).Background(t.Surface).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(shown) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%4.0f%%", frac*100)) +
		spaceStyle.Render("  ") +
		noteStyle.Render(note)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
