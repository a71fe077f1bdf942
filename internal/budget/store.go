// Package budget implements the budget allocation engine: deposit tracking,
// expense records, allocation policies, priority classification and the
// analytics derived from a record.
package budget

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/theirongolddev/splitabill/internal/model"
)

// DefaultCategory is used when an expense is added without a category.
const DefaultCategory = "Other"

// ExpenseInput is a new expense as entered by the user. Amounts are raw
// text and go through ParseAmount.
type ExpenseInput struct {
	Name     string
	Category string
	Planned  string
	DueDate  string
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new expenses.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithPriorityReorder makes AllocateByPriority store the expenses in the
// priority order it allocated them in, instead of keeping entry order.
func WithPriorityReorder(on bool) Option {
	return func(s *Store) { s.reorder = on }
}

// Store owns one budget record. Every mutation builds a new record and
// replaces the current one; readers always receive copies.
//
// A Store is not safe for concurrent use.
type Store struct {
	rec     model.Record
	newID   func() string
	reorder bool
}

// NewStore returns a store holding an empty record.
func NewStore(opts ...Option) *Store {
	s := &Store{newID: uuid.NewString}
	for _, o := range opts {
		o(s)
	}
	s.rec.Expenses = []model.Expense{}
	return s
}

// Record returns a copy of the current record.
func (s *Store) Record() model.Record {
	return s.rec.Clone()
}

// Expenses returns the expenses in stored order.
func (s *Store) Expenses() []model.Expense {
	return s.rec.Clone().Expenses
}

// Expense returns the expense with the given id.
func (s *Store) Expense(id string) (model.Expense, bool) {
	for _, e := range s.rec.Expenses {
		if e.ID == id {
			return e, true
		}
	}
	return model.Expense{}, false
}

// DisplayOrder returns the expenses sorted by priority, highest first.
// Ties keep their stored order.
func (s *Store) DisplayOrder() []model.Expense {
	return SortByPriority(s.rec.Expenses)
}

// SortByPriority returns a copy of expenses stably sorted high to low.
func SortByPriority(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

// Reset discards the record and starts over with an empty one.
func (s *Store) Reset() {
	s.rec = model.Record{Expenses: []model.Expense{}}
}

// SetDeposit sets the total deposit and recomputes the remaining amount
// against the current allocations. Negative or non-finite amounts become 0.
func (s *Store) SetDeposit(amount float64) {
	next := s.rec.Clone()
	next.TotalDeposit = clampAmount(amount)
	next.RemainingAmount = next.TotalDeposit - totalAllocated(next.Expenses)
	s.rec = next
}

// AddExpense classifies and appends a new expense. It reports false and
// changes nothing when the name or planned amount is empty.
func (s *Store) AddExpense(in ExpenseInput) (model.Expense, bool) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Planned) == "" {
		return model.Expense{}, false
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	e := model.Expense{
		ID:            s.newID(),
		Name:          name,
		Category:      category,
		PlannedAmount: ParseAmount(in.Planned),
		DueDate:       strings.TrimSpace(in.DueDate),
		Priority:      ClassifyPriority(name, category),
	}

	next := s.rec.Clone()
	next.Expenses = append(next.Expenses, e)
	s.rec = next
	return e, true
}

// RemoveExpense deletes the expense with the given id. The remaining amount
// is not recomputed.
func (s *Store) RemoveExpense(id string) bool {
	next := s.rec.Clone()
	kept := next.Expenses[:0]
	for _, e := range next.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.rec.Expenses) {
		return false
	}
	next.Expenses = kept
	s.rec = next
	return true
}

// RecordActual sets the amount actually spent on an expense.
func (s *Store) RecordActual(id string, amount float64) bool {
	next := s.rec.Clone()
	for i := range next.Expenses {
		if next.Expenses[i].ID == id {
			next.Expenses[i].ActualAmount = clampAmount(amount)
			s.rec = next
			return true
		}
	}
	return false
}

// ClearAllocations zeroes every allocation and returns the full deposit to
// the remaining amount.
func (s *Store) ClearAllocations() {
	next := s.rec.Clone()
	for i := range next.Expenses {
		next.Expenses[i].AllocatedAmount = 0
	}
	next.RemainingAmount = next.TotalDeposit
	s.rec = next
}

func totalAllocated(expenses []model.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.AllocatedAmount
	}
	return sum
}
