package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/currency"
	"github.com/theirongolddev/splitabill/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportDB    string
	flagExportLabel string
	flagExportList  bool
	flagExportShow  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Save a budget snapshot to the SQLite archive",
	RunE:  runExport,
}

func init() {
	addPlanFlag(exportCmd)
	exportCmd.Flags().StringVar(&flagExportDB, "db", filepath.Join(dataDir(), "archive.db"), "Archive database path")
	exportCmd.Flags().StringVar(&flagExportLabel, "label", "", "Snapshot label (default: plan file name)")
	exportCmd.Flags().BoolVar(&flagExportList, "list", false, "List stored snapshots instead of exporting")
	exportCmd.Flags().StringVar(&flagExportShow, "show", "", "Print the expenses stored with a snapshot id")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	archive, err := store.Open(flagExportDB)
	if err != nil {
		return err
	}
	defer func() { _ = archive.Close() }()

	switch {
	case flagExportList:
		return listSnapshots(archive)
	case flagExportShow != "":
		return showSnapshot(archive, flagExportShow)
	}

	st, cur, err := loadPlan(flagPlan)
	if err != nil {
		return err
	}

	label := flagExportLabel
	if label == "" {
		label = filepath.Base(flagPlan)
	}

	id, err := archive.SaveSnapshot(label, os.Getenv("USER"), cur.Code, st.Record(), time.Now())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	fmt.Printf("  Saved snapshot %s (%d expenses) to %s\n", id, len(st.Expenses()), flagExportDB)
	return nil
}

func listSnapshots(archive *store.Archive) error {
	snaps, err := archive.Snapshots()
	if err != nil {
		return fmt.Errorf("listing snapshots: %w", err)
	}
	if len(snaps) == 0 {
		fmt.Println("\n  No snapshots yet. Run `splitabill export --plan FILE` to add one.")
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		cur, err := currency.Lookup(s.Currency)
		if err != nil {
			cur = currency.Default()
		}
		rows = append(rows, []string{
			s.ID,
			s.Label,
			cli.FormatAgo(s.CreatedAt),
			fmt.Sprintf("%d", s.Summary.ExpenseCount),
			cli.FormatAmount(cur, s.Summary.TotalDeposit),
			cli.FormatAmount(cur, s.Summary.TotalAllocated),
			cli.FormatAmount(cur, s.Summary.TotalActual),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    fmt.Sprintf("Snapshots (%d)", len(snaps)),
		Headers:  []string{"ID", "Label", "Saved", "Expenses", "Deposit", "Allocated", "Actual"},
		Rows:     rows,
		LeftCols: []int{1, 2},
	}))
	return nil
}

func showSnapshot(archive *store.Archive, id string) error {
	expenses, err := archive.Expenses(id)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	if len(expenses) == 0 {
		return fmt.Errorf("snapshot %s has no expenses or does not exist", id)
	}

	fmt.Println()
	fmt.Print(renderExpenseTable("Snapshot "+id, expenses, activeCurrency(loadConfig(), "")))
	return nil
}
