// Package cmd implements the splitabill CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	if env := config.Currency(cfg); env != cfg.General.Currency {
		fmt.Printf("    Env override:   %s\n", env)
	}
	fmt.Printf("    Default policy: %s\n", cfg.General.DefaultPolicy)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Budget]")
	fmt.Printf("    Reorder on priority: %v\n", cfg.Budget.ReorderOnPriority)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:       %s\n", cfg.Server.Addr)
	fmt.Printf("    Events buffer: %d\n", cfg.Server.EventsBuffer)
	fmt.Println()

	fmt.Println("  Run `splitabill setup` to reconfigure.")
	return nil
}
