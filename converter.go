package numeric

// Converter carries resolved parse and format defaults so the two
// directions of an input field share one configuration.
type Converter struct {
	opts Options
}

// New builds a Converter from the supplied options.
func New(opts ...Option) *Converter {
	return &Converter{opts: *newOptions(opts)}
}

// options merges per call options over a copy of the converter's defaults.
// The ambient locale resolves here so the inner paths stay pure.
func (c *Converter) options(opts []Option) *Options {
	var merged Options
	if c != nil {
		merged = c.opts
	}
	merged.apply(opts)
	merged.ensureDefaults()
	merged.ensureLocale()
	return &merged
}

// ParseNumber parses free form numeric text with the converter's defaults.
func (c *Converter) ParseNumber(text string, opts ...Option) (float64, error) {
	return parseNumber(text, c.options(opts))
}

// ParseAmount parses and rounds to the converter's currency.
func (c *Converter) ParseAmount(text string, opts ...Option) (float64, error) {
	return parseAmount(text, c.options(opts))
}

// FormatAmount renders a value with the converter's locale and precision.
func (c *Converter) FormatAmount(value float64, opts ...Option) string {
	return formatAmount(value, c.options(opts))
}

// FormatMoney renders a value with the currency symbol attached.
func (c *Converter) FormatMoney(value float64, opts ...Option) string {
	return formatMoney(value, c.options(opts))
}

// Locale reports the converter's locale, falling back to the process
// default when none was pinned.
func (c *Converter) Locale() string {
	if c != nil && c.opts.Locale != "" {
		return c.opts.Locale
	}
	return DefaultLocale()
}

// Separators reports the separator pair the converter parses against,
// useful for input hints and key filters.
func (c *Converter) Separators() Separators {
	o := c.options(nil)
	return o.Separators.Separators(o.Locale)
}
