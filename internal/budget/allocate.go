package budget

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/splitabill/internal/model"
)

// Policy names an allocation strategy.
type Policy string

const (
	PolicyProportional Policy = "proportional"
	PolicyPriority     Policy = "priority"
)

// ParsePolicy parses a policy name case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyProportional, PolicyPriority:
		return p, nil
	}
	return "", fmt.Errorf("unknown allocation policy %q (want proportional or priority)", s)
}

// Allocate runs the named policy. It reports whether the record changed.
func (s *Store) Allocate(p Policy) bool {
	switch p {
	case PolicyProportional:
		return s.AllocateProportionally()
	case PolicyPriority:
		return s.AllocateByPriority()
	}
	return false
}

// AllocateProportionally gives every expense the share of the deposit that
// its planned amount is of the total planned. The remaining amount becomes
// 0. Nothing happens when the deposit or the total planned is 0.
func (s *Store) AllocateProportionally() bool {
	deposit := s.rec.TotalDeposit
	planned := totalPlanned(s.rec.Expenses)
	if deposit == 0 || planned == 0 {
		return false
	}

	next := s.rec.Clone()
	for i := range next.Expenses {
		next.Expenses[i].AllocatedAmount = next.Expenses[i].PlannedAmount / planned * deposit
	}
	next.RemainingAmount = 0
	s.rec = next
	return true
}

// AllocateByPriority funds expenses in priority order, each up to its
// planned amount, until the deposit runs out. An expense that cannot be
// fully funded takes whatever is left and everything after it gets 0.
// Nothing happens when the deposit is 0.
func (s *Store) AllocateByPriority() bool {
	if s.rec.TotalDeposit == 0 {
		return false
	}

	sorted := SortByPriority(s.rec.Expenses)
	allocated := make(map[string]float64, len(sorted))
	remaining := s.rec.TotalDeposit
	for i := range sorted {
		amount := remaining
		if remaining >= sorted[i].PlannedAmount {
			amount = sorted[i].PlannedAmount
		}
		sorted[i].AllocatedAmount = amount
		allocated[sorted[i].ID] = amount
		remaining -= amount
	}

	next := s.rec.Clone()
	if s.reorder {
		next.Expenses = sorted
	} else {
		for i := range next.Expenses {
			next.Expenses[i].AllocatedAmount = allocated[next.Expenses[i].ID]
		}
	}
	next.RemainingAmount = remaining
	s.rec = next
	return true
}

func totalPlanned(expenses []model.Expense) float64 {
	var sum float64
	for _, e := range expenses {
		sum += e.PlannedAmount
	}
	return sum
}
