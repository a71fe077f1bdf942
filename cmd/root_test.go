package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/splitabill/internal/config"
	"github.com/theirongolddev/splitabill/internal/model"
)

func TestActiveCurrencyPrecedence(t *testing.T) {
	t.Setenv("SPLITABILL_CURRENCY", "")
	cfg := config.DefaultConfig()
	cfg.General.Currency = "EUR"

	old := flagCurrency
	t.Cleanup(func() { flagCurrency = old })

	tests := []struct {
		name   string
		flag   string
		config string
		plan   string
		want   string
	}{
		{"config", "", "EUR", "", "EUR"},
		{"plan over config", "", "EUR", "JPY", "JPY"},
		{"unknown plan falls through", "", "EUR", "XXX", "EUR"},
		{"flag over plan", "GBP", "EUR", "JPY", "GBP"},
		{"unknown config", "", "nope", "", "USD"},
	}
	for _, tt := range tests {
		flagCurrency = tt.flag
		cfg.General.Currency = tt.config
		if got := activeCurrency(cfg, tt.plan).Code; got != tt.want {
			t.Errorf("%s: activeCurrency() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStoreOptionsHonoursReorder(t *testing.T) {
	old := flagReorder
	t.Cleanup(func() { flagReorder = old })

	flagReorder = false
	if got := len(storeOptions(config.DefaultConfig())); got != 1 {
		t.Errorf("len(storeOptions()) = %d, want 1", got)
	}
}

func TestLoadPlan(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SPLITABILL_CURRENCY", "")
	path := filepath.Join(t.TempDir(), "march.toml")
	err := os.WriteFile(path, []byte(`
deposit = 1000
currency = "INR"
policy = "priority"

[[expense]]
name = "Rent"
category = "Housing"
planned = 600

[[expense]]
name = "Dining out"
category = "Entertainment"
planned = "500"
`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	st, cur, err := loadPlan(path)
	if err != nil {
		t.Fatalf("loadPlan() error: %v", err)
	}
	if cur.Code != "INR" {
		t.Errorf("currency = %q, want INR", cur.Code)
	}

	rec := st.Record()
	if len(rec.Expenses) != 2 {
		t.Fatalf("len(Expenses) = %d, want 2", len(rec.Expenses))
	}
	for i, want := range []float64{600, 400} {
		if got := rec.Expenses[i].AllocatedAmount; math.Abs(got-want) > 1e-9 {
			t.Errorf("Expenses[%d].AllocatedAmount = %v, want %v", i, got, want)
		}
	}
	if math.Abs(rec.RemainingAmount) > 1e-9 {
		t.Errorf("RemainingAmount = %v, want 0", rec.RemainingAmount)
	}

	if _, _, err := loadPlan(""); err == nil {
		t.Error("loadPlan(\"\") should fail")
	}
}

func TestExpenseFlag(t *testing.T) {
	tests := []struct {
		e    model.Expense
		want string
	}{
		{model.Expense{PlannedAmount: 100, AllocatedAmount: 50, ActualAmount: 60}, "over"},
		{model.Expense{PlannedAmount: 100, AllocatedAmount: 100}, "funded"},
		{model.Expense{PlannedAmount: 100, AllocatedAmount: 40}, "partial"},
		{model.Expense{PlannedAmount: 100}, "-"},
	}
	for _, tt := range tests {
		if got := expenseFlag(tt.e); got != tt.want {
			t.Errorf("expenseFlag(%+v) = %q, want %q", tt.e, got, tt.want)
		}
	}
}
