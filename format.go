package numeric

import (
	"math"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printers = struct {
	mu    sync.RWMutex
	cache map[string]*message.Printer
}{cache: make(map[string]*message.Printer)}

func localePrinter(locale string) *message.Printer {
	normalized := normalizeLocale(locale)

	printers.mu.RLock()
	printer, ok := printers.cache[normalized]
	printers.mu.RUnlock()
	if ok {
		return printer
	}

	printer = message.NewPrinter(language.Make(normalized))

	printers.mu.Lock()
	printers.cache[normalized] = printer
	printers.mu.Unlock()

	return printer
}

func formatAmount(value float64, o *Options) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}

	digits := o.resolveFractionDigits()
	opts := []number.Option{
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	}
	if o.noGrouping {
		opts = append(opts, number.NoSeparator())
	}

	return localePrinter(o.Locale).Sprintf("%v", number.Decimal(value, opts...))
}

func formatMoney(value float64, o *Options) string {
	formatted := formatAmount(value, o)
	if formatted == "" {
		return ""
	}

	code := strings.TrimSpace(o.Currency)
	if code == "" {
		return formatted
	}

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return strings.ToUpper(code) + " " + formatted
	}

	symbol := currencySymbol(unit, o.Locale)
	if symbolAfterAmount(o) {
		return formatted + " " + symbol
	}
	return symbol + " " + formatted
}

func currencySymbol(unit currency.Unit, locale string) string {
	symbol := extractSymbol(localePrinter(locale), unit)
	if symbol == "" || symbol == unit.String() {
		if english := extractSymbol(localePrinter("en"), unit); english != "" {
			symbol = english
		}
	}
	if symbol == "" {
		symbol = unit.String()
	}
	return symbol
}

// extractSymbol renders a zero amount through the printer and strips the
// numeric part, leaving the locale's spelling of the unit's symbol.
func extractSymbol(printer *message.Printer, unit currency.Unit) string {
	full := printer.Sprintf("%v", currency.Symbol(unit.Amount(0.0)))

	var b strings.Builder
	for _, r := range full {
		if unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == ',' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// symbolPositioner upgrades a SeparatorSource that also knows where a
// locale places its currency symbol.
type symbolPositioner interface {
	SymbolAfterAmount(locale string) bool
}

func symbolAfterAmount(o *Options) bool {
	if positioner, ok := o.Separators.(symbolPositioner); ok {
		return positioner.SymbolAfterAmount(o.Locale)
	}
	return symbolAfterDefault(o.Locale)
}

func symbolAfterDefault(locale string) bool {
	for _, candidate := range localeCandidates(locale) {
		if after, ok := symbolAfterTable[candidate]; ok {
			return after
		}
	}
	return false
}

// symbolAfterTable marks locales that write the amount first. Everything
// absent keeps the symbol in front.
var symbolAfterTable = map[string]bool{
	"bg":    true,
	"cs":    true,
	"da":    true,
	"de":    true,
	"el":    true,
	"es":    true,
	"et":    true,
	"fi":    true,
	"fr":    true,
	"hr":    true,
	"hu":    true,
	"it":    true,
	"lt":    true,
	"lv":    true,
	"pl":    true,
	"pt-PT": true,
	"ro":    true,
	"ru":    true,
	"sk":    true,
	"sl":    true,
	"sv":    true,
	"uk":    true,
	"vi":    true,
}
