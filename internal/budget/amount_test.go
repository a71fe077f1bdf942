package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1000", 1000},
		{" 12.50 ", 12.5},
		{"1,234.5", 1234.5},
		{"1e3", 1000},
		{"", 0},
		{"abc", 0},
		{"12abc", 12},
		{"500 USD", 500},
		{"7.", 7},
		{".5", 0.5},
		{"1e", 1},
		{"$500", 0},
		{"-40", 0},
		{"NaN", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.in), "ParseAmount(%q)", tt.in)
	}
}
