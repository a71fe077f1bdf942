// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/model"
)

// FormatMoney formats an amount with the currency symbol, digit grouping
// and exactly two decimals. e.g., 1234.5 -> "$1,234.50"
func FormatMoney(c currency.Currency, v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	fixed := decimal.NewFromFloat(v).StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n := decimal.RequireFromString(whole).IntPart()
	return sign + c.Symbol + humanize.Comma(n) + "." + frac
}

// FormatAmount formats an amount compactly, dropping trailing zeros.
// e.g., 1200 -> "$1,200", 12.5 -> "$12.5"
func FormatAmount(c currency.Currency, v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return c.Symbol + "0"
	}
	return c.Symbol + humanize.CommafWithDigits(v, 2)
}

// FormatPercent formats a 0-100 value as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatAgo formats a past time relative to now. e.g., "3 minutes ago"
func FormatAgo(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

// Greeting returns a salutation for the hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// HealthText renders the one-line budget status.
func HealthText(c currency.Currency, h model.Health) string {
	switch h.State {
	case model.HealthNoDeposit:
		return "Set your budget in the Deposits section to get started!"
	case model.HealthUnallocated:
		return "You have " + FormatAmount(c, h.Amount) + " remaining to allocate"
	case model.HealthOverAllocated:
		return "You are over budget by " + FormatAmount(c, h.Amount)
	default:
		return "Your budget is fully allocated"
	}
}
