package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/theirongolddev/splitabill/internal/budget"
)

func openTemp(t *testing.T, parts ...string) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(append([]string{t.TempDir()}, parts...)...))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestSaveAndListSnapshots(t *testing.T) {
	a := openTemp(t, "nested", "archive.db")

	s := budget.NewStore()
	s.SetDeposit(1000)
	s.AddExpense(budget.ExpenseInput{Name: "Dining", Planned: "500", DueDate: "2025-03-01"})
	s.AddExpense(budget.ExpenseInput{Name: "Rent", Category: "Housing", Planned: "600"})
	s.AllocateByPriority()
	rec := s.Record()

	first := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	id1, err := a.SaveSnapshot("january", "demo@splitabill.com", "USD", rec, first)
	if err != nil {
		t.Fatalf("SaveSnapshot(january) error: %v", err)
	}

	s.ClearAllocations()
	id2, err := a.SaveSnapshot("cleared", "demo@splitabill.com", "EUR", s.Record(), first.Add(time.Hour))
	if err != nil {
		t.Fatalf("SaveSnapshot(cleared) error: %v", err)
	}
	if id1 == id2 {
		t.Fatalf("snapshot ids collide: %q", id1)
	}

	snaps, err := a.Snapshots()
	if err != nil {
		t.Fatalf("Snapshots() error: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("len(snaps) = %d, want 2", len(snaps))
	}
	if snaps[0].Label != "cleared" || snaps[1].Label != "january" {
		t.Errorf("labels = %q, %q, want newest first", snaps[0].Label, snaps[1].Label)
	}
	sum := snaps[1].Summary
	if sum.TotalPlanned != 1100 || sum.TotalAllocated != 1000 || sum.ExpenseCount != 2 {
		t.Errorf("january summary = %+v", sum)
	}
	if !snaps[1].CreatedAt.Equal(first) {
		t.Errorf("CreatedAt = %v, want %v", snaps[1].CreatedAt, first)
	}

	got, err := a.Expenses(id1)
	if err != nil {
		t.Fatalf("Expenses() error: %v", err)
	}
	if !reflect.DeepEqual(got, rec.Expenses) {
		t.Errorf("Expenses() = %+v, want %+v", got, rec.Expenses)
	}
}

func TestExpensesUnknownSnapshot(t *testing.T) {
	a := openTemp(t, "archive.db")

	got, err := a.Expenses("missing")
	if err != nil {
		t.Fatalf("Expenses() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expenses(missing) = %+v, want none", got)
	}
}
