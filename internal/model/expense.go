// Package model defines the core data types shared across splitabill.
package model

import "strings"

// Priority ranks an expense for priority-ordered allocation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Rank orders priorities: high 3, medium 2, low 1. Unknown values rank 0.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ParsePriority parses a priority name case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if p.Rank() == 0 {
		return "", false
	}
	return p, true
}

// Expense is one planned line item within a budget record.
type Expense struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	PlannedAmount   float64  `json:"planned_amount"`
	AllocatedAmount float64  `json:"allocated_amount"`
	ActualAmount    float64  `json:"actual_amount"`
	DueDate         string   `json:"due_date,omitempty"`
	Priority        Priority `json:"priority"`
}

// Record is the budget owned by a single session: a deposit and the
// expenses it is spread across.
//
// RemainingAmount is only recomputed by deposit changes, allocation runs and
// clearing; adding or removing expenses leaves it untouched.
type Record struct {
	TotalDeposit    float64   `json:"total_deposit"`
	Expenses        []Expense `json:"expenses"`
	RemainingAmount float64   `json:"remaining_amount"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	out.Expenses = make([]Expense, len(r.Expenses))
	copy(out.Expenses, r.Expenses)
	return out
}
