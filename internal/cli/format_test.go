package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/model"
)

func TestFormatMoney(t *testing.T) {
	usd := currency.Default()
	inr, _ := currency.Lookup("INR")

	tests := []struct {
		c    currency.Currency
		v    float64
		want string
	}{
		{usd, 0, "$0.00"},
		{usd, 1234.5, "$1,234.50"},
		{usd, 999.999, "$1,000.00"},
		{usd, -400, "-$400.00"},
		{inr, 1234567.891, "₹1,234,567.89"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.c, tt.v); got != tt.want {
			t.Errorf("FormatMoney(%s, %v) = %q, want %q", tt.c.Code, tt.v, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	usd := currency.Default()
	if got := FormatAmount(usd, 1200); got != "$1,200" {
		t.Errorf("FormatAmount(1200) = %q", got)
	}
	if got := FormatAmount(usd, 12.5); got != "$12.5" {
		t.Errorf("FormatAmount(12.5) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(62.345); got != "62.3%" {
		t.Errorf("FormatPercent = %q", got)
	}
}

func TestGreeting(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2025, 1, 1, h, 0, 0, 0, time.UTC) }
	for h, want := range map[int]string{
		0: "Good Morning", 11: "Good Morning",
		12: "Good Afternoon", 16: "Good Afternoon",
		17: "Good Evening", 23: "Good Evening",
	} {
		if got := Greeting(day(h)); got != want {
			t.Errorf("Greeting(%d:00) = %q, want %q", h, got, want)
		}
	}
}

func TestFormatAgo(t *testing.T) {
	if got := FormatAgo(time.Time{}); got != "never" {
		t.Errorf("FormatAgo(zero) = %q", got)
	}
	if got := FormatAgo(time.Now().Add(-3 * time.Hour)); !strings.Contains(got, "hours ago") {
		t.Errorf("FormatAgo(-3h) = %q", got)
	}
}

func TestRenderTableAlignsWideSymbols(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Expense", "Planned"},
		Rows: [][]string{
			{"Rent", "₹600.00"},
			{"---"},
			{"Total", "₹1,100.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	want := len([]rune(lines[0]))
	for i, l := range lines {
		if n := len([]rune(l)); n != want {
			t.Errorf("line %d width %d, want %d: %q", i, n, want, l)
		}
	}
	if !strings.Contains(out, "   ₹600.00 ") {
		t.Errorf("amount not right-aligned:\n%s", out)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(50, 10); got != "[█████░░░░░] 50.0%" {
		t.Errorf("RenderProgressBar(50) = %q", got)
	}
	if got := RenderProgressBar(150, 4); got != "[████] 150.0%" {
		t.Errorf("RenderProgressBar(150) = %q", got)
	}
}

func TestHealthText(t *testing.T) {
	usd := currency.Default()
	tests := []struct {
		h    model.Health
		want string
	}{
		{model.Health{State: model.HealthUnallocated, Amount: 400}, "You have $400 remaining to allocate"},
		{model.Health{State: model.HealthOverAllocated, Amount: 250.5}, "You are over budget by $250.5"},
		{model.Health{State: model.HealthBalanced}, "Your budget is fully allocated"},
		{model.Health{State: model.HealthNoDeposit}, "Set your budget in the Deposits section to get started!"},
	}
	for _, tt := range tests {
		if got := HealthText(usd, tt.h); got != tt.want {
			t.Errorf("HealthText(%v) = %q, want %q", tt.h.State, got, tt.want)
		}
	}
}
