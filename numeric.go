package numeric

// Mode describes how input text reached the parser
type Mode int

const (
	// ModeTyped marks text keyed in by a user, where a lone separator is
	// usually deliberate and follows the user's locale.
	ModeTyped Mode = iota
	// ModePasted marks text copied in whole, carrying whatever convention
	// its source used.
	ModePasted
)

func (m Mode) String() string {
	if m == ModePasted {
		return "pasted"
	}
	return "typed"
}

// ParseNumber extracts a float64 from free form numeric text, deducing which
// separators group digits and which one starts the fraction. Currency
// symbols, codes, and surrounding words are ignored. Inputs with no digits
// report ErrEmptyInput or ErrNoDigits instead of a value.
func ParseNumber(text string, opts ...Option) (float64, error) {
	o := newOptions(opts)
	o.ensureLocale()
	return parseNumber(text, o)
}

// ParseAmount parses like ParseNumber, then rounds the value to the fraction
// digits of the configured currency. Without a currency the value passes
// through unrounded.
func ParseAmount(text string, opts ...Option) (float64, error) {
	o := newOptions(opts)
	o.ensureLocale()
	return parseAmount(text, o)
}

// FormatAmount renders value with the locale's separators, grouped, fixed to
// the currency's fraction digits (two without a currency). Non finite values
// render as the empty string.
func FormatAmount(value float64, opts ...Option) string {
	o := newOptions(opts)
	o.ensureLocale()
	return formatAmount(value, o)
}

// FormatMoney renders like FormatAmount with the currency symbol attached in
// the locale's position.
func FormatMoney(value float64, opts ...Option) string {
	o := newOptions(opts)
	o.ensureLocale()
	return formatMoney(value, o)
}
