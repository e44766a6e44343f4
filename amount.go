package numeric

import (
	"strings"

	"github.com/shopspring/decimal"
)

func parseAmount(text string, o *Options) (float64, error) {
	value, err := parseNumber(text, o)
	if err != nil {
		return 0, err
	}

	code := strings.TrimSpace(o.Currency)
	if code == "" {
		return value, nil
	}

	return roundToDigits(value, o.Digits.FractionDigits(code)), nil
}

// roundToDigits rounds half away from zero on the shortest decimal form of
// the float, so 1.015 lands on 1.02 even though its binary value sits just
// below the midpoint.
func roundToDigits(value float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	return decimal.NewFromFloat(value).Round(int32(digits)).InexactFloat64()
}
