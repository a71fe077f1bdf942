package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/config"
	"github.com/theirongolddev/splitabill/internal/session"
	"github.com/theirongolddev/splitabill/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	dir, err := session.NewDirectory(session.DemoCredentials)
	if err != nil {
		return fmt.Errorf("preparing accounts: %w", err)
	}

	// Cards rely on background colours, so keep full colour unless the user
	// asked for none.
	if !flagNoColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	app := tui.NewApp(tui.Options{
		Directory:    dir,
		Config:       cfg,
		Currency:     activeCurrency(cfg, "").Code,
		StoreOptions: storeOptions(cfg),
		SaveConfig:   config.Save,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
