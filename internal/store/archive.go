// Package store writes budget snapshots to a SQLite archive for reporting.
// Snapshots are exports only; sessions never load from them.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/splitabill/internal/budget"
	"github.com/theirongolddev/splitabill/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Archive is a SQLite file of budget snapshots.
type Archive struct {
	db *sql.DB
}

// Open opens or creates the archive database at the given path.
func Open(dbPath string) (*Archive, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening archive db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Archive{db: db}, nil
}

// Close closes the archive database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Snapshot describes one stored export.
type Snapshot struct {
	ID        string
	Label     string
	UserEmail string
	Currency  string
	Summary   model.Summary
	CreatedAt time.Time
}

// SaveSnapshot stores the record with its headline totals and returns the
// new snapshot id.
func (a *Archive) SaveSnapshot(label, userEmail, currencyCode string, rec model.Record, at time.Time) (string, error) {
	tx, err := a.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	sum := budget.Summarize(rec)
	_, err = tx.Exec(`INSERT INTO snapshots
		(snapshot_id, label, user_email, currency, total_deposit, remaining_amount,
		 total_planned, total_allocated, total_actual, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, label, userEmail, currencyCode, rec.TotalDeposit, rec.RemainingAmount,
		sum.TotalPlanned, sum.TotalAllocated, sum.TotalActual, at.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("inserting snapshot: %w", err)
	}

	for i, e := range rec.Expenses {
		_, err = tx.Exec(`INSERT INTO snapshot_expenses
			(snapshot_id, position, expense_id, name, category, priority,
			 planned_amount, allocated_amount, actual_amount, due_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i, e.ID, e.Name, e.Category, string(e.Priority),
			e.PlannedAmount, e.AllocatedAmount, e.ActualAmount, e.DueDate,
		)
		if err != nil {
			return "", fmt.Errorf("inserting expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Snapshots lists stored snapshots, newest first.
func (a *Archive) Snapshots() ([]Snapshot, error) {
	rows, err := a.db.Query(`SELECT s.snapshot_id, s.label, s.user_email, s.currency,
		s.total_deposit, s.remaining_amount, s.total_planned, s.total_allocated,
		s.total_actual, s.created_at,
		(SELECT COUNT(*) FROM snapshot_expenses e WHERE e.snapshot_id = s.snapshot_id)
		FROM snapshots s ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		var created string
		if err := rows.Scan(&s.ID, &s.Label, &s.UserEmail, &s.Currency,
			&s.Summary.TotalDeposit, &s.Summary.Remaining, &s.Summary.TotalPlanned,
			&s.Summary.TotalAllocated, &s.Summary.TotalActual, &created,
			&s.Summary.ExpenseCount); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, created); err == nil {
			s.CreatedAt = t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Expenses returns the expenses stored with a snapshot in their original
// order.
func (a *Archive) Expenses(snapshotID string) ([]model.Expense, error) {
	rows, err := a.db.Query(`SELECT expense_id, name, category, priority,
		planned_amount, allocated_amount, actual_amount, COALESCE(due_date, '')
		FROM snapshot_expenses WHERE snapshot_id = ? ORDER BY position`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []model.Expense
	for rows.Next() {
		var e model.Expense
		var prio string
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &prio,
			&e.PlannedAmount, &e.AllocatedAmount, &e.ActualAmount, &e.DueDate); err != nil {
			return nil, err
		}
		e.Priority = model.Priority(prio)
		out = append(out, e)
	}
	return out, rows.Err()
}
