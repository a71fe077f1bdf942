package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Budget totals, utilization and health",
	RunE:  runSummary,
}

func init() {
	addPlanFlag(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	st, cur, err := loadPlan(flagPlan)
	if err != nil {
		return err
	}

	rec := st.Record()
	sum := budget.Summarize(rec)
	health := budget.HealthOf(rec)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET SUMMARY  %s", cur.Code)))
	fmt.Println()

	rows := [][]string{
		{"Total Deposit", cli.FormatMoney(cur, sum.TotalDeposit)},
		{"Planned", cli.FormatMoney(cur, sum.TotalPlanned)},
		{"Allocated", cli.FormatMoney(cur, sum.TotalAllocated)},
		{"Spent", cli.FormatMoney(cur, sum.TotalActual)},
		{"Remaining", cli.FormatMoney(cur, sum.Remaining)},
		{"---"},
		{"Utilization", cli.FormatPercent(sum.AllocationPercentage) + "  " + budget.UtilizationLevel(sum.AllocationPercentage)},
		{"Efficiency", cli.FormatPercent(sum.SpendingEfficiency) + "  " + budget.EfficiencyLevel(sum.SpendingEfficiency)},
		{"---"},
		{"Expenses", fmt.Sprintf("%d", sum.ExpenseCount)},
		{"High Priority", fmt.Sprintf("%d", sum.HighPriorityCount)},
		{"Fully Funded", fmt.Sprintf("%d", sum.FullyFundedCount)},
		{"Over Budget", fmt.Sprintf("%d", sum.OverBudgetCount)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	fmt.Println()
	fmt.Printf("  Allocated %s\n", cli.RenderProgressBar(sum.AllocationPercentage, 30))
	fmt.Printf("  Spent     %s\n", cli.RenderProgressBar(sum.SpendingEfficiency, 30))
	fmt.Println()

	msg := cli.HealthText(cur, health)
	switch health.State {
	case model.HealthBalanced:
		msg = cli.Good(msg)
	case model.HealthOverAllocated:
		msg = cli.Alert(msg)
	default:
		msg = cli.Warn(msg)
	}
	fmt.Printf("  %s\n", msg)

	return nil
}
