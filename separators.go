package numeric

import (
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Separators holds the two separator runes a locale writes numbers with.
type Separators struct {
	Decimal rune
	Group   rune
}

// SeparatorSource reports the separator conventions for a locale.
type SeparatorSource interface {
	Separators(locale string) Separators
}

// defaultSeparators resolves against the generated table first and probes
// golang.org/x/text for any locale the table misses.
var defaultSeparators SeparatorSource = &localeSeparators{}

type localeSeparators struct {
	mu    sync.RWMutex
	cache map[string]Separators
}

var _ SeparatorSource = (*localeSeparators)(nil)

func (s *localeSeparators) Separators(locale string) Separators {
	for _, candidate := range localeCandidates(locale) {
		if sep, ok := separatorTable[candidate]; ok {
			return sep
		}
	}

	normalized := normalizeLocale(locale)

	s.mu.RLock()
	sep, ok := s.cache[normalized]
	s.mu.RUnlock()
	if ok {
		return sep
	}

	sep = probeSeparators(normalized)

	s.mu.Lock()
	if s.cache == nil {
		s.cache = make(map[string]Separators)
	}
	s.cache[normalized] = sep
	s.mu.Unlock()

	return sep
}

// probeSeparators formats two known values through x/text and reads the
// separator runes out of the rendered strings.
func probeSeparators(locale string) Separators {
	sep := Separators{Decimal: '.', Group: ','}
	printer := message.NewPrinter(language.Make(locale))

	probe := printer.Sprintf("%v", number.Decimal(1.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if r, ok := firstSeparatorRune(probe); ok {
		sep.Decimal = r
	}

	probe = printer.Sprintf("%v", number.Decimal(1000000,
		number.MaxFractionDigits(0)))
	if r, ok := firstSeparatorRune(probe); ok {
		sep.Group = r
	}

	return sep
}

func firstSeparatorRune(formatted string) (rune, bool) {
	for _, r := range formatted {
		if unicode.IsDigit(r) || r == '-' {
			continue
		}
		return r, true
	}
	return 0, false
}

// fixedSeparators ignores locale and always reports the same pair.
type fixedSeparators struct {
	sep Separators
}

var _ SeparatorSource = fixedSeparators{}

func (f fixedSeparators) Separators(string) Separators {
	return f.sep
}
