package budget

import (
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of an entry, so "500 USD" reads
// as 500 and "12abc" as 12.
var leadingNumber = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount converts user-entered text into a non-negative amount.
// Grouping commas are ignored and trailing text after the number is
// dropped. Text that does not start with a number, or a negative amount,
// becomes 0.
func ParseAmount(text string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	num := leadingNumber.FindString(strings.TrimPrefix(s, "+"))
	if num == "" || num[0] == '-' {
		return 0
	}
	if num[0] == '.' {
		num = "0" + num
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0
	}
	return clampAmount(d.InexactFloat64())
}

func clampAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
