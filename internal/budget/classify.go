package budget

import (
	"strings"

	"github.com/theirongolddev/splitabill/internal/model"
)

// MatchField says which input decided a classification.
type MatchField string

const (
	MatchName     MatchField = "name"
	MatchCategory MatchField = "category"
	MatchDefault  MatchField = "default"
)

// Classification is the outcome of Classify along with the term that
// decided it.
type Classification struct {
	Priority model.Priority
	Term     string
	Field    MatchField
}

type termSet struct {
	priority   model.Priority
	keywords   []string // matched against the expense name
	categories []string // matched against the category
}

// Checked in this order. Medium is also the fallback, so consulting its
// lists only changes the explanation, never the priority.
var termSets = []termSet{
	{
		priority: model.PriorityHigh,
		keywords: []string{
			"rent", "mortgage", "loan", "emi", "insurance", "medical", "health",
			"medicine", "doctor", "hospital", "electricity", "water", "gas",
			"utilities", "phone", "internet", "groceries", "food", "fuel",
			"petrol", "diesel", "school", "education", "tuition", "childcare",
			"daycare", "tax", "debt", "credit card",
		},
		categories: []string{
			"housing", "utilities", "healthcare", "insurance", "debt",
			"education", "transportation", "food", "groceries", "medical",
			"essential",
		},
	},
	{
		priority: model.PriorityLow,
		keywords: []string{
			"entertainment", "movie", "cinema", "restaurant", "dining", "coffee",
			"starbucks", "vacation", "trip", "travel", "hotel", "shopping",
			"gadget", "electronics", "gaming", "hobby", "party", "club", "bar",
			"alcohol", "luxury", "jewelry", "watch", "brand", "designer",
		},
		categories: []string{
			"entertainment", "dining", "travel", "shopping", "hobbies",
			"luxury", "recreation", "leisure",
		},
	},
	{
		priority: model.PriorityMedium,
		keywords: []string{
			"clothing", "clothes", "gym", "fitness", "subscription", "netflix",
			"spotify", "amazon", "maintenance", "repair", "service", "cleaning",
			"laundry", "haircut", "salon", "barber", "gift", "birthday",
			"anniversary", "savings", "investment",
		},
		categories: []string{
			"personal care", "fitness", "subscriptions", "maintenance", "gifts",
			"savings", "investment", "clothing",
		},
	},
}

// Classify assigns a priority from an expense name and category using
// substring keyword matching. It is total: unmatched input is medium.
func Classify(name, category string) Classification {
	n := strings.ToLower(name)
	c := strings.ToLower(category)

	for _, set := range termSets {
		for _, kw := range set.keywords {
			if strings.Contains(n, kw) {
				return Classification{Priority: set.priority, Term: kw, Field: MatchName}
			}
		}
		if c == "" {
			continue
		}
		for _, cat := range set.categories {
			if strings.Contains(c, cat) {
				return Classification{Priority: set.priority, Term: cat, Field: MatchCategory}
			}
		}
	}
	return Classification{Priority: model.PriorityMedium, Field: MatchDefault}
}

// ClassifyPriority is Classify without the explanation.
func ClassifyPriority(name, category string) model.Priority {
	return Classify(name, category).Priority
}
