package model

// Summary holds the headline totals derived from a record.
type Summary struct {
	TotalDeposit   float64 `json:"total_deposit"`
	TotalPlanned   float64 `json:"total_planned"`
	TotalAllocated float64 `json:"total_allocated"`
	TotalActual    float64 `json:"total_actual"`
	Remaining      float64 `json:"remaining"`

	AllocationPercentage float64 `json:"allocation_percentage"`
	SpendingEfficiency   float64 `json:"spending_efficiency"`

	ExpenseCount      int `json:"expense_count"`
	HighPriorityCount int `json:"high_priority_count"`
	OverBudgetCount   int `json:"over_budget_count"`
	FullyFundedCount  int `json:"fully_funded_count"`
}

// CategoryTotal sums the expenses sharing one category.
type CategoryTotal struct {
	Category  string  `json:"category"`
	Count     int     `json:"count"`
	Planned   float64 `json:"planned"`
	Allocated float64 `json:"allocated"`
	Actual    float64 `json:"actual"`
}

// RecommendationKind classifies an advisory message.
type RecommendationKind string

const (
	KindOpportunity RecommendationKind = "opportunity"
	KindWarning     RecommendationKind = "warning"
	KindAlert       RecommendationKind = "alert"
)

// Recommendation is one advisory message about the current budget.
type Recommendation struct {
	Kind        RecommendationKind `json:"kind"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
}

// HealthState describes how much of the deposit is allocated.
type HealthState string

const (
	HealthNoDeposit     HealthState = "no_deposit"
	HealthUnallocated   HealthState = "unallocated"
	HealthOverAllocated HealthState = "over_allocated"
	HealthBalanced      HealthState = "balanced"
)

// Health is the dashboard's one-line budget status.
type Health struct {
	State  HealthState `json:"state"`
	Amount float64     `json:"amount"`
}
