// Package money centralizes parsing and rounding of monetary values and
// quantities. Historically money fields arrived as free-form strings and were
// silently coerced with Number(x || 0); Parse makes that default explicit:
// it is total (never returns an error) and yields zero for anything that is
// not a number.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a user-entered amount into a decimal. It accepts a comma as
// decimal separator ("12,50" == "12.50") and trims surrounding whitespace.
// Invalid or empty input yields zero — never an error.
func Parse(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds to 2 decimal places, half away from zero. Used for every
// monetary figure that is stored or displayed.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round3 rounds to 3 decimal places. Used for weight/unit quantities.
func Round3(d decimal.Decimal) decimal.Decimal {
	return d.Round(3)
}
