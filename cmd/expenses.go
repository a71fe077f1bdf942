package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/model"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Expense table with funding progress",
	RunE:  runExpenses,
}

func init() {
	addPlanFlag(expensesCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpenses(_ *cobra.Command, _ []string) error {
	st, cur, err := loadPlan(flagPlan)
	if err != nil {
		return err
	}

	list := st.DisplayOrder()
	if len(list) == 0 {
		fmt.Println("\n  No expenses in this plan.")
		return nil
	}

	fmt.Println()
	fmt.Print(renderExpenseTable(fmt.Sprintf("Expenses (%d)", len(list)), list, cur))
	return nil
}

// renderExpenseTable lists expenses with planned, allocated and actual
// amounts plus a status flag.
func renderExpenseTable(title string, list []model.Expense, cur currency.Currency) string {
	rows := make([][]string, 0, len(list)+2)
	var planned, allocated, actual float64
	for _, e := range list {
		planned += e.PlannedAmount
		allocated += e.AllocatedAmount
		actual += e.ActualAmount
		rows = append(rows, []string{
			e.Name,
			e.Category,
			string(e.Priority),
			cli.FormatAmount(cur, e.PlannedAmount),
			cli.FormatAmount(cur, e.AllocatedAmount),
			cli.FormatAmount(cur, e.ActualAmount),
			cli.FormatPercent(budget.FundingProgress(e)),
			expenseFlag(e),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total", "", "",
		cli.FormatAmount(cur, planned),
		cli.FormatAmount(cur, allocated),
		cli.FormatAmount(cur, actual),
		"", "",
	})

	return cli.RenderTable(cli.Table{
		Title:    title,
		Headers:  []string{"Name", "Category", "Priority", "Planned", "Allocated", "Actual", "Funded", "Status"},
		Rows:     rows,
		LeftCols: []int{1, 2, 7},
	})
}

func expenseFlag(e model.Expense) string {
	switch {
	case e.ActualAmount > e.AllocatedAmount:
		return "over"
	case e.AllocatedAmount >= e.PlannedAmount:
		return "funded"
	case e.AllocatedAmount > 0:
		return "partial"
	default:
		return "-"
	}
}
