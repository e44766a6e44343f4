package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// unicodeSpaces folds the space variants CLDR locales group digits with
// down to a plain space before scanning.
var unicodeSpaces = strings.NewReplacer(
	" ", " ",
	" ", " ",
	" ", " ",
)

// easternDigits folds Arabic-Indic and Extended Arabic-Indic digit shapes
// to their ASCII counterparts.
var easternDigits = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

type sepOccurrence struct {
	char rune
	pos  int
}

func parseNumber(text string, o *Options) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, ErrEmptyInput
	}

	// A minus anywhere marks the value negative. Currency styles place it
	// before the symbol, after it, or trailing the amount, and some locales
	// print U+2212 instead of the ASCII hyphen.
	negative := strings.ContainsAny(trimmed, "-−")

	cleaned := scrub(trimmed)
	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0, ErrNoDigits
	}

	occ := scanSeparators(cleaned)
	decimal := o.Separators.Separators(o.Locale).Decimal
	decimalIdx := resolveDecimal(occ, trailingDigits(cleaned, occ), o.Mode, decimal)

	value, err := strconv.ParseFloat(assemble(cleaned, occ, decimalIdx), 64)
	if err != nil {
		return 0, fmt.Errorf("numeric: parse %q: %w", text, err)
	}

	if negative && value != 0 {
		value = -value
	}
	return value, nil
}

// scrub reduces raw text to ASCII digits and separator candidates. Unicode
// spaces fold to plain space, eastern digit shapes fold to ASCII, runs of
// spaces collapse to one, and separators hanging off the right edge drop.
func scrub(text string) string {
	text = unicodeSpaces.Replace(text)
	text = easternDigits.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case r == '.' || r == ',':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ':
			if !lastSpace {
				b.WriteRune(r)
			}
			lastSpace = true
		}
	}

	cleaned := strings.Trim(b.String(), " ")
	// A trailing separator cannot start a fraction; a leading one can
	// ("point five" entered as ".5").
	return strings.TrimRight(cleaned, " .,")
}

// scanSeparators records each separator candidate with its byte offset.
// scrub output is pure ASCII so offsets count runes too.
func scanSeparators(cleaned string) []sepOccurrence {
	var occ []sepOccurrence
	for i, r := range cleaned {
		if r == '.' || r == ',' || r == ' ' {
			occ = append(occ, sepOccurrence{char: r, pos: i})
		}
	}
	return occ
}

// trailingDigits counts the digits after the last separator occurrence.
func trailingDigits(cleaned string, occ []sepOccurrence) int {
	if len(occ) == 0 {
		return 0
	}
	return len(cleaned) - occ[len(occ)-1].pos - 1
}

// assemble rebuilds the cleaned text as a strconv ready literal: grouping
// separators removed, the decimal occurrence replaced with a dot.
func assemble(cleaned string, occ []sepOccurrence, decimalIdx int) string {
	decimalPos := -1
	if decimalIdx >= 0 && decimalIdx < len(occ) {
		decimalPos = occ[decimalIdx].pos
	}

	var b strings.Builder
	b.Grow(len(cleaned))
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
			continue
		}
		if i == decimalPos {
			b.WriteByte('.')
		}
	}
	return b.String()
}
