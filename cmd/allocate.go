package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"

	"github.com/spf13/cobra"
)

var flagPolicy string

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Split the deposit across expenses with a policy",
	Long: "Run an allocation policy over a plan and print the result.\n\n" +
		"  proportional  each expense gets deposit × planned / total planned\n" +
		"  priority      high, then medium, then low, each funded in full while money lasts",
	RunE: runAllocate,
}

func init() {
	addPlanFlag(allocateCmd)
	allocateCmd.Flags().StringVar(&flagPolicy, "policy", "", "Allocation policy: proportional or priority (default from config)")
	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(_ *cobra.Command, _ []string) error {
	name := flagPolicy
	if name == "" {
		name = loadConfig().General.DefaultPolicy
	}
	pol, err := budget.ParsePolicy(name)
	if err != nil {
		return err
	}

	st, cur, err := loadPlan(flagPlan)
	if err != nil {
		return err
	}

	if !st.Allocate(pol) {
		fmt.Println("\n  Nothing to allocate: set a deposit and add expenses first.")
		return nil
	}

	rec := st.Record()
	fmt.Println()
	fmt.Print(renderExpenseTable(fmt.Sprintf("Allocated by %s", pol), st.DisplayOrder(), cur))
	fmt.Println()
	fmt.Print(cli.RenderKV([][2]string{
		{"Deposit", cli.FormatMoney(cur, rec.TotalDeposit)},
		{"Remaining", cli.FormatMoney(cur, rec.RemainingAmount)},
	}))
	return nil
}
