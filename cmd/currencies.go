package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/currency"

	"github.com/spf13/cobra"
)

var currenciesCmd = &cobra.Command{
	Use:   "currencies",
	Short: "List supported display currencies",
	RunE:  runCurrencies,
}

func init() {
	rootCmd.AddCommand(currenciesCmd)
}

func runCurrencies(_ *cobra.Command, _ []string) error {
	active := activeCurrency(loadConfig(), "")

	all := currency.All()
	rows := make([][]string, 0, len(all))
	for _, c := range all {
		mark := ""
		if c.Code == active.Code {
			mark = "*"
		}
		rows = append(rows, []string{c.Code, c.Symbol, c.Name, cli.FormatMoney(c, 1234.5), mark})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    fmt.Sprintf("Currencies (%d)", len(all)),
		Headers:  []string{"Code", "Symbol", "Name", "Example", "Active"},
		Rows:     rows,
		LeftCols: []int{1, 2},
	}))
	return nil
}
