package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/config"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/plan"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagCurrency string
	flagNoColor  bool
	flagReorder  bool
	flagPlan     string
)

var rootCmd = &cobra.Command{
	Use:   "splitabill",
	Short: "Budget allocation dashboard",
	Long:  "Split a deposit across planned expenses, track what you spend, and see where the money went.",
	RunE:  runTUI,

	SilenceUsage:      true,
	PersistentPreRunE: setupOutput,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Display currency code (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagReorder, "reorder", false, "Reorder expenses by priority after a priority allocation")
}

func setupOutput(_ *cobra.Command, _ []string) error {
	if flagNoColor || os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if flagCurrency != "" {
		if _, err := currency.Lookup(flagCurrency); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig returns the saved config, falling back to defaults when the
// file is unreadable.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %s, using defaults\n", err)
		return config.DefaultConfig()
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg
}

// activeCurrency resolves the display currency: the --currency flag, then the
// plan file, then config and the environment.
func activeCurrency(cfg config.Config, planCurrency string) currency.Currency {
	for _, code := range []string{flagCurrency, planCurrency, config.Currency(cfg)} {
		if code == "" {
			continue
		}
		if c, err := currency.Lookup(code); err == nil {
			return c
		}
	}
	return currency.Default()
}

func storeOptions(cfg config.Config) []budget.Option {
	return []budget.Option{
		budget.WithPriorityReorder(flagReorder || cfg.Budget.ReorderOnPriority),
	}
}

// loadPlan is the shared data loading path for the reporting commands. It
// replays the plan file into a fresh store.
func loadPlan(path string) (*budget.Store, currency.Currency, error) {
	cfg := loadConfig()
	if path == "" {
		return nil, currency.Currency{}, fmt.Errorf("no plan file given, pass --plan FILE")
	}

	p, err := plan.Load(path)
	if err != nil {
		return nil, currency.Currency{}, err
	}

	st := budget.NewStore(storeOptions(cfg)...)
	if skipped := p.Apply(st); skipped > 0 {
		fmt.Fprintf(os.Stderr, "  Skipped %d expenses with no name\n", skipped)
	}
	return st, activeCurrency(cfg, p.Currency), nil
}

func addPlanFlag(c *cobra.Command) {
	c.Flags().StringVarP(&flagPlan, "plan", "f", "", "Budget plan file (.toml or .yaml)")
	_ = c.MarkFlagFilename("plan", "toml", "yaml", "yml")
}

// dataDir holds the daemon runtime files and the snapshot archive.
func dataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "splitabill")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "splitabill")
}
