package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/model"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Category rollup and recommendations",
	RunE:  runInsights,
}

func init() {
	addPlanFlag(insightsCmd)
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
	st, cur, err := loadPlan(flagPlan)
	if err != nil {
		return err
	}
	rec := st.Record()

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET INSIGHTS"))
	fmt.Println()

	cats := budget.CategoryRollup(rec)
	if len(cats) > 0 {
		rows := make([][]string, 0, len(cats))
		var maxAlloc float64
		for _, c := range cats {
			maxAlloc = max(maxAlloc, c.Allocated)
		}
		for _, c := range cats {
			rows = append(rows, []string{
				c.Category,
				fmt.Sprintf("%d", c.Count),
				cli.FormatAmount(cur, c.Planned),
				cli.FormatAmount(cur, c.Allocated),
				cli.FormatAmount(cur, c.Actual),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By Category",
			Headers: []string{"Category", "Count", "Planned", "Allocated", "Actual"},
			Rows:    rows,
		}))
		fmt.Println()
		for _, c := range cats {
			fmt.Println(cli.RenderHorizontalBar(fmt.Sprintf("%-14s", c.Category), c.Allocated, maxAlloc, 30))
		}
		fmt.Println()
	}

	fmt.Println("  Recommendations")
	recs := budget.Recommend(rec)
	if len(recs) == 0 {
		fmt.Printf("    %s\n", cli.Good(budget.NoRecommendations))
	}
	for _, r := range recs {
		title := r.Title
		switch r.Kind {
		case model.KindAlert:
			title = cli.Alert(title)
		case model.KindWarning:
			title = cli.Warn(title)
		default:
			title = cli.Good(title)
		}
		fmt.Printf("    %s\n", title)
		fmt.Printf("    %s\n\n", cli.Muted(r.Description))
	}

	if over := budget.OverBudget(rec); len(over) > 0 {
		fmt.Println()
		fmt.Println("  Over Budget")
		for _, e := range over {
			fmt.Printf("    %s  %s\n", e.Name, cli.Alert(cli.FormatMoney(cur, e.ActualAmount-e.AllocatedAmount)+" over"))
		}
	}

	return nil
}
