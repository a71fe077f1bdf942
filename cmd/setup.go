package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/config"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg := loadConfig()

	currencyOpts := make([]huh.Option[string], 0, len(currency.All()))
	for _, c := range currency.All() {
		currencyOpts = append(currencyOpts, huh.NewOption(c.Label(), c.Code))
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to splitabill!").
				Description("Pick how budgets are shown and split. Everything can be changed later."),
			huh.NewSelect[string]().
				Title("Display currency").
				Options(currencyOpts...).
				Height(8).
				Value(&cfg.General.Currency),
			huh.NewSelect[string]().
				Title("Default allocation policy").
				Options(
					huh.NewOption("Proportional: split by planned amount", string(budget.PolicyProportional)),
					huh.NewOption("Priority: fund high, then medium, then low", string(budget.PolicyPriority)),
				).
				Value(&cfg.General.DefaultPolicy),
			huh.NewConfirm().
				Title("Reorder expenses by priority after a priority allocation?").
				Value(&cfg.Budget.ReorderOnPriority),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `splitabill setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
