package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/splitabill/internal/assistant"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask MESSAGE...",
	Short: "Ask BudgetBot a budgeting question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	bot := assistant.New()
	pair := bot.Send(strings.Join(args, " "))
	if pair == nil {
		return errors.New("empty question")
	}
	fmt.Printf("\n  BudgetBot: %s\n", pair[1].Content)
	return nil
}
