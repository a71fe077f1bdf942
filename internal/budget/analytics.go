package budget

import "github.com/theirongolddev/splitabill/internal/model"

// Summarize computes the headline totals for a record.
func Summarize(r model.Record) model.Summary {
	sum := model.Summary{
		TotalDeposit: r.TotalDeposit,
		Remaining:    r.RemainingAmount,
		ExpenseCount: len(r.Expenses),
	}
	for _, e := range r.Expenses {
		sum.TotalPlanned += e.PlannedAmount
		sum.TotalAllocated += e.AllocatedAmount
		sum.TotalActual += e.ActualAmount
		if e.Priority == model.PriorityHigh {
			sum.HighPriorityCount++
		}
		if isOverBudget(e) {
			sum.OverBudgetCount++
		}
		if isFullyFunded(e) {
			sum.FullyFundedCount++
		}
	}
	sum.AllocationPercentage = percentOf(sum.TotalAllocated, sum.TotalDeposit)
	sum.SpendingEfficiency = percentOf(sum.TotalActual, sum.TotalAllocated)
	return sum
}

// AllocationPercentage is total allocated as a percentage of the deposit.
func AllocationPercentage(r model.Record) float64 {
	return percentOf(totalAllocated(r.Expenses), r.TotalDeposit)
}

// SpendingEfficiency is total actual spend as a percentage of total
// allocated.
func SpendingEfficiency(r model.Record) float64 {
	var actual float64
	for _, e := range r.Expenses {
		actual += e.ActualAmount
	}
	return percentOf(actual, totalAllocated(r.Expenses))
}

// OverBudget returns expenses whose actual spend exceeds their allocation.
func OverBudget(r model.Record) []model.Expense {
	return filter(r.Expenses, isOverBudget)
}

// UnderBudget returns expenses with some spend that is still below their
// allocation.
func UnderBudget(r model.Record) []model.Expense {
	return filter(r.Expenses, func(e model.Expense) bool {
		return e.ActualAmount > 0 && e.ActualAmount < e.AllocatedAmount
	})
}

// FullyFunded returns expenses allocated at least their planned amount.
func FullyFunded(r model.Record) []model.Expense {
	return filter(r.Expenses, isFullyFunded)
}

// FundingProgress is an expense's allocation as a percentage of its planned
// amount.
func FundingProgress(e model.Expense) float64 {
	return percentOf(e.AllocatedAmount, e.PlannedAmount)
}

// CategoryRollup groups expenses by category in order of first appearance.
func CategoryRollup(r model.Record) []model.CategoryTotal {
	idx := make(map[string]int)
	var out []model.CategoryTotal
	for _, e := range r.Expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, model.CategoryTotal{Category: e.Category})
		}
		out[i].Count++
		out[i].Planned += e.PlannedAmount
		out[i].Allocated += e.AllocatedAmount
		out[i].Actual += e.ActualAmount
	}
	return out
}

// UtilizationLevel labels an allocation percentage.
func UtilizationLevel(pct float64) string {
	switch {
	case pct > 100:
		return "Over"
	case pct > 90:
		return "High"
	default:
		return "Normal"
	}
}

// EfficiencyLevel labels a spending efficiency percentage.
func EfficiencyLevel(pct float64) string {
	switch {
	case pct > 80:
		return "Efficient"
	case pct > 50:
		return "Moderate"
	default:
		return "Low"
	}
}

// HealthOf reports how much of the deposit is still unallocated, or by how
// much it is overcommitted.
func HealthOf(r model.Record) model.Health {
	if r.TotalDeposit == 0 {
		return model.Health{State: model.HealthNoDeposit}
	}
	allocated := totalAllocated(r.Expenses)
	pct := percentOf(allocated, r.TotalDeposit)
	switch {
	case pct < 100:
		return model.Health{State: model.HealthUnallocated, Amount: r.TotalDeposit - allocated}
	case pct > 100:
		return model.Health{State: model.HealthOverAllocated, Amount: allocated - r.TotalDeposit}
	default:
		return model.Health{State: model.HealthBalanced}
	}
}

func isOverBudget(e model.Expense) bool  { return e.ActualAmount > e.AllocatedAmount }
func isFullyFunded(e model.Expense) bool { return e.AllocatedAmount >= e.PlannedAmount }

func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func filter(expenses []model.Expense, keep func(model.Expense) bool) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
