package numeric

import (
	"strings"

	"golang.org/x/text/currency"
)

// defaultFractionDigits applies when no currency is set or the code is
// unknown.
const defaultFractionDigits = 2

// DigitsResolver reports the fraction digit count for an ISO 4217 code.
type DigitsResolver interface {
	FractionDigits(code string) int
}

var defaultDigits DigitsResolver = ISODigits{}

// ISODigits resolves fraction digits from the ISO 4217 data shipped with
// golang.org/x/text. Unknown codes resolve to two digits.
type ISODigits struct{}

var _ DigitsResolver = ISODigits{}

func (ISODigits) FractionDigits(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return defaultFractionDigits
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return defaultFractionDigits
	}

	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// StaticDigits consults a fixed table before handing the code to a fallback
// resolver.
type StaticDigits struct {
	Table    map[string]int
	Fallback DigitsResolver
}

var _ DigitsResolver = StaticDigits{}

func (d StaticDigits) FractionDigits(code string) int {
	if len(d.Table) > 0 {
		if digits, ok := d.Table[strings.ToUpper(strings.TrimSpace(code))]; ok {
			return digits
		}
	}
	if d.Fallback != nil {
		return d.Fallback.FractionDigits(code)
	}
	return defaultFractionDigits
}
