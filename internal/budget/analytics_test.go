package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/splitabill/internal/model"
)

func exp(name, cat string, p model.Priority, planned, allocated, actual float64) model.Expense {
	return model.Expense{
		ID: name, Name: name, Category: cat, Priority: p,
		PlannedAmount: planned, AllocatedAmount: allocated, ActualAmount: actual,
	}
}

func TestSummarize(t *testing.T) {
	rec := model.Record{
		TotalDeposit:    1000,
		RemainingAmount: 200,
		Expenses: []model.Expense{
			exp("Rent", "Housing", model.PriorityHigh, 600, 600, 650),
			exp("Gym", "Fitness", model.PriorityMedium, 100, 100, 40),
			exp("Movie", "Entertainment", model.PriorityLow, 200, 100, 0),
		},
	}
	sum := Summarize(rec)
	assert.Equal(t, 900.0, sum.TotalPlanned)
	assert.Equal(t, 800.0, sum.TotalAllocated)
	assert.Equal(t, 690.0, sum.TotalActual)
	assert.Equal(t, 200.0, sum.Remaining)
	assert.InDelta(t, 80.0, sum.AllocationPercentage, 1e-9)
	assert.InDelta(t, 86.25, sum.SpendingEfficiency, 1e-9)
	assert.Equal(t, 3, sum.ExpenseCount)
	assert.Equal(t, 1, sum.HighPriorityCount)
	assert.Equal(t, 1, sum.OverBudgetCount)
	assert.Equal(t, 2, sum.FullyFundedCount)

	assert.InDelta(t, 80.0, AllocationPercentage(rec), 1e-9)
	assert.InDelta(t, 86.25, SpendingEfficiency(rec), 1e-9)
}

func TestPercentagesWithZeroDenominator(t *testing.T) {
	rec := model.Record{Expenses: []model.Expense{exp("A", "x", model.PriorityLow, 10, 0, 5)}}
	assert.Zero(t, AllocationPercentage(rec))
	assert.Zero(t, SpendingEfficiency(rec))
	assert.Zero(t, FundingProgress(rec.Expenses[0]))
	assert.Zero(t, FundingProgress(model.Expense{AllocatedAmount: 3}))
}

func TestBudgetFlags(t *testing.T) {
	rec := model.Record{Expenses: []model.Expense{
		exp("over", "x", model.PriorityLow, 10, 10, 12),
		exp("under", "x", model.PriorityLow, 10, 10, 4),
		exp("unspent", "x", model.PriorityLow, 10, 5, 0),
		exp("exact", "x", model.PriorityLow, 10, 10, 10),
	}}

	names := func(es []model.Expense) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Name)
		}
		return out
	}
	assert.Equal(t, []string{"over"}, names(OverBudget(rec)))
	assert.Equal(t, []string{"under"}, names(UnderBudget(rec)))
	assert.Equal(t, []string{"over", "under", "exact"}, names(FullyFunded(rec)))
	assert.InDelta(t, 50.0, FundingProgress(rec.Expenses[2]), 1e-9)
}

func TestCategoryRollupKeepsFirstAppearanceOrder(t *testing.T) {
	rec := model.Record{Expenses: []model.Expense{
		exp("Travel", "Travel", model.PriorityLow, 300, 100, 50),
		exp("Rent", "Housing", model.PriorityHigh, 600, 600, 600),
		exp("Hotel", "Travel", model.PriorityLow, 200, 50, 0),
		exp("Art", "Hobbies", model.PriorityLow, 20, 0, 0),
	}}
	got := CategoryRollup(rec)
	require.Len(t, got, 3)
	assert.Equal(t, model.CategoryTotal{Category: "Travel", Count: 2, Planned: 500, Allocated: 150, Actual: 50}, got[0])
	assert.Equal(t, "Housing", got[1].Category)
	assert.Equal(t, "Hobbies", got[2].Category)
	assert.Empty(t, CategoryRollup(model.Record{}))
}

func TestLevels(t *testing.T) {
	assert.Equal(t, "Over", UtilizationLevel(100.5))
	assert.Equal(t, "High", UtilizationLevel(100))
	assert.Equal(t, "Normal", UtilizationLevel(90))
	assert.Equal(t, "Efficient", EfficiencyLevel(81))
	assert.Equal(t, "Moderate", EfficiencyLevel(80))
	assert.Equal(t, "Low", EfficiencyLevel(50))
}

func TestHealthOf(t *testing.T) {
	assert.Equal(t, model.HealthNoDeposit, HealthOf(model.Record{}).State)

	rec := model.Record{
		TotalDeposit:    1000,
		RemainingAmount: 400,
		Expenses:        []model.Expense{exp("A", "x", model.PriorityHigh, 600, 600, 0)},
	}
	assert.Equal(t, model.Health{State: model.HealthUnallocated, Amount: 400}, HealthOf(rec))

	rec.Expenses[0].AllocatedAmount = 1250
	assert.Equal(t, model.Health{State: model.HealthOverAllocated, Amount: 250}, HealthOf(rec))

	rec.Expenses[0].AllocatedAmount = 1000
	assert.Equal(t, model.HealthBalanced, HealthOf(rec).State)
}

func TestRecommendOrder(t *testing.T) {
	rec := model.Record{
		TotalDeposit: 1000,
		Expenses: []model.Expense{
			exp("Rent", "Housing", model.PriorityHigh, 600, 300, 350),
			exp("Gym", "Fitness", model.PriorityMedium, 300, 300, 0),
		},
	}
	recs := Recommend(rec)
	require.Len(t, recs, 4)

	assert.Equal(t, "Underutilized Budget", recs[0].Title)
	assert.Equal(t, model.KindOpportunity, recs[0].Kind)
	assert.Equal(t, "You have 40.0% of your budget unallocated. "+
		"Consider increasing allocations to high-priority expenses.", recs[0].Description)

	assert.Equal(t, "Overspending Detected", recs[1].Title)
	assert.Equal(t, model.KindAlert, recs[1].Kind)
	assert.Equal(t, "1 expense(s) are over their allocated amounts. Review: Rent.", recs[1].Description)

	assert.Equal(t, "High Priority Items Underfunded", recs[2].Title)
	assert.Equal(t, model.KindWarning, recs[2].Kind)
	assert.Equal(t, "1 high-priority expense(s) need more funding: Rent.", recs[2].Description)

	assert.Equal(t, "Low Spending Efficiency", recs[3].Title)
	assert.Contains(t, recs[3].Description, "58.3%")
}

func TestRecommendOverBudget(t *testing.T) {
	rec := model.Record{
		TotalDeposit: 100,
		Expenses:     []model.Expense{exp("Trip", "Travel", model.PriorityLow, 150, 150, 120)},
	}
	recs := Recommend(rec)
	require.Len(t, recs, 1)
	assert.Equal(t, "Over Budget", recs[0].Title)
	assert.Equal(t, "You've allocated 50.0% more than your available budget. Consider reducing some allocations.", recs[0].Description)
}

func TestRecommendListsUnderfundedNames(t *testing.T) {
	rec := model.Record{
		TotalDeposit: 200,
		Expenses: []model.Expense{
			exp("Rent", "Housing", model.PriorityHigh, 150, 100, 100),
			exp("Books", "Education", model.PriorityLow, 50, 0, 0),
			exp("Insurance", "Health", model.PriorityHigh, 100, 60, 60),
		},
	}
	recs := Recommend(rec)
	require.NotEmpty(t, recs)
	var got string
	for _, r := range recs {
		if r.Title == "High Priority Items Underfunded" {
			got = r.Description
		}
	}
	assert.Equal(t, "2 high-priority expense(s) need more funding: Rent, Insurance.", got)
}

func TestRecommendBalanced(t *testing.T) {
	rec := model.Record{
		TotalDeposit: 100,
		Expenses:     []model.Expense{exp("Rent", "Housing", model.PriorityHigh, 100, 100, 90)},
	}
	assert.Empty(t, Recommend(rec))
}
