package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theirongolddev/splitabill/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name, category string
		want           model.Priority
		term           string
		field          MatchField
	}{
		{"Rent", "Housing", model.PriorityHigh, "rent", MatchName},
		{"Netflix", "Subscriptions", model.PriorityMedium, "netflix", MatchName},
		{"Movie tickets", "Entertainment", model.PriorityLow, "movie", MatchName},
		{"Widget", "", model.PriorityMedium, "", MatchDefault},
		{"Widget", "Other", model.PriorityMedium, "", MatchDefault},
		{"Monthly pass", "Transportation", model.PriorityHigh, "transportation", MatchCategory},
		{"Concert", "Leisure", model.PriorityLow, "leisure", MatchCategory},
		{"CREDIT CARD bill", "", model.PriorityHigh, "credit card", MatchName},
		// high beats low when both match
		{"Hotel tax", "", model.PriorityHigh, "tax", MatchName},
		{"Team dinner", "Dining", model.PriorityLow, "dining", MatchCategory},
		{"Shampoo", "Personal Care", model.PriorityMedium, "personal care", MatchCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.category, func(t *testing.T) {
			got := Classify(tt.name, tt.category)
			assert.Equal(t, tt.want, got.Priority)
			assert.Equal(t, tt.term, got.Term)
			assert.Equal(t, tt.field, got.Field)
			assert.Equal(t, tt.want, ClassifyPriority(tt.name, tt.category))
		})
	}
}

func TestClassifyKeywordsOnlyMatchName(t *testing.T) {
	// "entertainment" contains "rent", which is only a name keyword.
	assert.Equal(t, model.PriorityLow, ClassifyPriority("Show", "Entertainment"))
}

func TestClassifyIsTotal(t *testing.T) {
	for _, in := range []string{"", " ", "???", "日本", "zzzz"} {
		p := ClassifyPriority(in, in)
		assert.NotZero(t, p.Rank(), "input %q", in)
	}
}
