package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToWidth(t *testing.T) {
	for _, total := range []int{10, 79, 120, 181} {
		for n := 1; n <= 5; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if got := LayoutRow(80, 0); got != nil {
		t.Errorf("LayoutRow(80, 0) = %v, want nil", got)
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("short card has %d lines, tall card %d", shortLines, tallLines)
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("CardRow has %d lines, want %d", len(lines), tallLines)
	}

	for i, line := range lines {
		if w := lipgloss.Width(line); w != 44 {
			t.Errorf("line %d width = %d, want 44", i, w)
		}
		if i >= shortLines && !strings.Contains(line, "\x1b[") {
			t.Errorf("padding line %d is unstyled: %q", i, line)
		}
	}
}

func TestMetricCardRowHeight(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Deposit", Value: "$1,000.00"},
		{Label: "Remaining", Value: "$0.00", Detail: "fully allocated"},
	}, 60)
	if h := lipgloss.Height(row); h != 5 {
		t.Errorf("height = %d, want 5", h)
	}
	if w := lipgloss.Width(row); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'d', 0},
		{'p', 2},
		{'x', 5},
		{'z', -1},
	}
	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestTabVisualWidth(t *testing.T) {
	settings := Tabs[5]
	if got, want := TabVisualWidth(settings, true), len("Settings")+2; got != want {
		t.Errorf("active settings width = %d, want %d", got, want)
	}
	if got, want := TabVisualWidth(settings, false), len("Settings")+2+3; got != want {
		t.Errorf("inactive settings width = %d, want %d", got, want)
	}

	deposits := Tabs[2]
	if got, want := TabVisualWidth(deposits, false), len("Deposits")+2; got != want {
		t.Errorf("deposits width = %d, want %d", got, want)
	}
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	bar := RenderTabBar(1, 100)
	if w := lipgloss.Width(bar); w != 100 {
		t.Errorf("width = %d, want 100", w)
	}
	if h := lipgloss.Height(bar); h != 1 {
		t.Errorf("height = %d, want 1", h)
	}
}

func TestProgressBarShowsRealPercentage(t *testing.T) {
	out := ProgressBar(1.25, 10)
	if !strings.Contains(out, "125%") {
		t.Errorf("ProgressBar(1.25) = %q, missing 125%%", out)
	}
	if got, want := lipgloss.Width(out), 10+1+len("125%"); got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
}

func TestColorForFunding(t *testing.T) {
	th := theme.Active
	tests := []struct {
		ratio float64
		want  string
	}{
		{1.01, string(th.Red)},
		{1, string(th.Green)},
		{0.2, string(th.Orange)},
		{0, string(th.TextDim)},
	}
	for _, tt := range tests {
		if got := ColorForFunding(tt.ratio); got != tt.want {
			t.Errorf("ColorForFunding(%v) = %q, want %q", tt.ratio, got, tt.want)
		}
	}
}

func TestBarChart(t *testing.T) {
	out := BarChart([]Bar{
		{Label: "Housing", Value: 600, Text: "$600.00"},
		{Label: "Food", Value: 300, Text: "$300.00"},
		{Label: "Fun", Value: 0},
	}, lipgloss.Color("#3AA99F"), 50)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("BarChart has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("line %d width = %d, want 50", i, w)
		}
	}
	if got := BarChart(nil, lipgloss.Color("1"), 50); got != "" {
		t.Errorf("BarChart(nil) = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Rent", 10, "Rent"},
		{"Electricity", 6, "Elect…"},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestStatusBarWidth(t *testing.T) {
	out := RenderStatusBar(90, "demo@splitabill.com", "USD", "Saved")
	if w := lipgloss.Width(out); w != 90 {
		t.Errorf("width = %d, want 90", w)
	}
	if !strings.Contains(out, "USD") {
		t.Error("status bar missing currency code")
	}
}
