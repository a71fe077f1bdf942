package cmd

import (
	"fmt"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/cli"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify NAME [CATEGORY]",
	Short: "Show the priority an expense would get",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, args []string) error {
	category := ""
	if len(args) == 2 {
		category = args[1]
	}

	c := budget.Classify(args[0], category)

	pairs := [][2]string{{"Priority", string(c.Priority)}}
	switch c.Field {
	case budget.MatchDefault:
		pairs = append(pairs, [2]string{"Matched", "nothing, medium is the default"})
	default:
		pairs = append(pairs, [2]string{"Matched", fmt.Sprintf("%q in the %s", c.Term, c.Field)})
	}

	fmt.Println()
	fmt.Print(cli.RenderKV(pairs))
	return nil
}
