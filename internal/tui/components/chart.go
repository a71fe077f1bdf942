package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled row of a BarChart.
type Bar struct {
	Label string
	Value float64
	// Text is printed after the bar instead of the raw value when set.
	Text string
	// Color overrides the chart color for this bar.
	Color lipgloss.Color
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders one horizontal bar per row, scaled to the largest value.
// width is the full line width available, labels and values included.
func BarChart(bars []Bar, color lipgloss.Color, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	textW := 0
	maxVal := 0.0
	for _, b := range bars {
		if w := lipgloss.Width(b.Label); w > labelW {
			labelW = w
		}
		if w := lipgloss.Width(barText(b)); w > textW {
			textW = w
		}
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	if labelW > width/3 {
		labelW = width / 3
	}
	if maxVal == 0 {
		maxVal = 1
	}

	barW := width - labelW - textW - 2
	if barW < 4 {
		barW = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	trackStyle := lipgloss.NewStyle().Foreground(t.SurfaceBright).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		n := int(b.Value / maxVal * float64(barW))
		if n < 0 {
			n = 0
		}
		if n > barW {
			n = barW
		}
		if b.Value > 0 && n == 0 {
			n = 1
		}
		fill := barStyle
		if b.Color != "" {
			fill = barStyle.Foreground(b.Color)
		}
		lines = append(lines,
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(b.Label, labelW)))+
				spaceStyle.Render(" ")+
				fill.Render(strings.Repeat("█", n))+
				trackStyle.Render(strings.Repeat("─", barW-n))+
				spaceStyle.Render(" ")+
				textStyle.Render(fmt.Sprintf("%*s", textW, barText(b))))
	}
	return strings.Join(lines, "\n")
}

func barText(b Bar) string {
	if b.Text != "" {
		return b.Text
	}
	return fmt.Sprintf("%.0f", b.Value)
}
