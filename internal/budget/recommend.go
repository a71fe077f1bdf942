package budget

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/splitabill/internal/model"
)

// NoRecommendations is shown when Recommend returns nothing.
const NoRecommendations = "Great job! Your budget looks well-balanced."

// Recommend returns every advisory that applies to the record, always in
// the same check order: unallocated funds, over-allocation, overspending,
// underfunded high-priority items, low spending efficiency.
func Recommend(r model.Record) []model.Recommendation {
	var recs []model.Recommendation
	util := AllocationPercentage(r)
	eff := SpendingEfficiency(r)

	if util < 80 {
		recs = append(recs, model.Recommendation{
			Kind:  model.KindOpportunity,
			Title: "Underutilized Budget",
			Description: fmt.Sprintf("You have %.1f%% of your budget unallocated. "+
				"Consider increasing allocations to high-priority expenses.", 100-util),
		})
	}

	if util > 100 {
		recs = append(recs, model.Recommendation{
			Kind:  model.KindWarning,
			Title: "Over Budget",
			Description: fmt.Sprintf("You've allocated %.1f%% more than your available budget. "+
				"Consider reducing some allocations.", util-100),
		})
	}

	if over := OverBudget(r); len(over) > 0 {
		recs = append(recs, model.Recommendation{
			Kind:  model.KindAlert,
			Title: "Overspending Detected",
			Description: fmt.Sprintf("%d expense(s) are over their allocated amounts. Review: %s.",
				len(over), expenseNames(over)),
		})
	}

	underfunded := filter(r.Expenses, func(e model.Expense) bool {
		return e.Priority == model.PriorityHigh && e.AllocatedAmount < e.PlannedAmount
	})
	if len(underfunded) > 0 {
		recs = append(recs, model.Recommendation{
			Kind:        model.KindWarning,
			Title:       "High Priority Items Underfunded",
			Description: fmt.Sprintf("%d high-priority expense(s) need more funding: %s.",
				len(underfunded), expenseNames(underfunded)),
		})
	}

	if eff > 0 && eff < 70 {
		recs = append(recs, model.Recommendation{
			Kind:  model.KindOpportunity,
			Title: "Low Spending Efficiency",
			Description: fmt.Sprintf("You're only using %.1f%% of your allocated budget. "+
				"Consider reallocating unused funds.", eff),
		})
	}

	return recs
}

func expenseNames(list []model.Expense) string {
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return strings.Join(names, ", ")
}
