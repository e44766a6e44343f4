package numeric

import "strings"

// Options captures parse and format behavior for a single call or a Converter
type Options struct {
	Locale     string
	Mode       Mode
	Currency   string
	Digits     DigitsResolver
	Separators SeparatorSource

	fractionDigits    int
	hasFractionDigits bool
	noGrouping        bool
}

// Option mutates Options during construction
type Option func(*Options)

func newOptions(opts []Option) *Options {
	o := &Options{}
	o.apply(opts)
	o.ensureDefaults()
	return o
}

func (o *Options) apply(opts []Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
}

func (o *Options) ensureDefaults() {
	if o.Digits == nil {
		o.Digits = defaultDigits
	}
	if o.Separators == nil {
		o.Separators = defaultSeparators
	}
}

// ensureLocale fills in the process default. Call it at API boundaries only
// so the inner parse and format paths never consult ambient state.
func (o *Options) ensureLocale() {
	if o.Locale == "" {
		o.Locale = DefaultLocale()
	}
}

func (o *Options) resolveFractionDigits() int {
	if o.hasFractionDigits {
		return o.fractionDigits
	}
	if code := strings.TrimSpace(o.Currency); code != "" {
		return o.Digits.FractionDigits(code)
	}
	return defaultFractionDigits
}

// WithLocale pins the locale used for separator deduction and rendering.
func WithLocale(locale string) Option {
	return func(o *Options) {
		o.Locale = locale
	}
}

// WithMode marks how the input text arrived, see ModeTyped and ModePasted.
func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

// WithCurrency sets the ISO 4217 code used for rounding and symbol lookup.
func WithCurrency(code string) Option {
	return func(o *Options) {
		o.Currency = code
	}
}

// WithFractionDigits overrides the fraction digit count when formatting.
func WithFractionDigits(digits int) Option {
	return func(o *Options) {
		if digits < 0 {
			return
		}
		o.fractionDigits = digits
		o.hasFractionDigits = true
	}
}

// WithoutGrouping drops group separators from formatted output.
func WithoutGrouping() Option {
	return func(o *Options) {
		o.noGrouping = true
	}
}

func WithDigitsResolver(resolver DigitsResolver) Option {
	return func(o *Options) {
		if resolver == nil {
			return
		}
		o.Digits = resolver
	}
}

func WithSeparatorSource(source SeparatorSource) Option {
	return func(o *Options) {
		if source == nil {
			return
		}
		o.Separators = source
	}
}

// WithSeparators forces an explicit separator pair, bypassing locale lookup.
func WithSeparators(decimal, group rune) Option {
	return func(o *Options) {
		o.Separators = fixedSeparators{Separators{Decimal: decimal, Group: group}}
	}
}

// WithFacts wires both separator conventions and currency digit overrides
// from loaded facts data.
func WithFacts(facts *Facts) Option {
	return func(o *Options) {
		if facts == nil {
			return
		}
		o.Separators = facts.SeparatorSource()
		o.Digits = facts.DigitsResolver()
	}
}
