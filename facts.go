package numeric

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/default_number_facts.json
var defaultNumberFactsJSON []byte

// LocaleFacts describes one locale's number writing conventions.
type LocaleFacts struct {
	Decimal          string `json:"decimal" yaml:"decimal"`
	Group            string `json:"group" yaml:"group"`
	CurrencyPosition string `json:"currency_position,omitempty" yaml:"currency_position,omitempty"`
}

// Facts aggregates locale conventions and currency fraction digits loaded
// from data files.
type Facts struct {
	Locales    map[string]LocaleFacts `json:"locales" yaml:"locales"`
	Currencies map[string]int         `json:"currencies" yaml:"currencies"`
}

// FactsLoader layers facts files over the embedded defaults.
type FactsLoader struct {
	paths []string
}

// NewFactsLoader creates a loader for the given files. JSON and YAML are
// decided by extension.
func NewFactsLoader(paths ...string) *FactsLoader {
	return &FactsLoader{paths: append([]string{}, paths...)}
}

// Load decodes the embedded defaults, then merges each configured file in
// order. Later files win entry by entry.
func (l *FactsLoader) Load() (*Facts, error) {
	facts := &Facts{}
	if err := json.Unmarshal(defaultNumberFactsJSON, facts); err != nil {
		return nil, fmt.Errorf("numeric: parse default facts: %w", err)
	}

	if l == nil {
		return facts, nil
	}

	for _, path := range l.paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		loaded, err := decodeFactsFile(path)
		if err != nil {
			return nil, err
		}
		facts.merge(loaded)
	}

	return facts, nil
}

func decodeFactsFile(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("numeric: read %s: %w", path, err)
	}

	facts := &Facts{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, facts); err != nil {
			return nil, fmt.Errorf("numeric: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, facts); err != nil {
			return nil, fmt.Errorf("numeric: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("numeric: unsupported facts file %s", path)
	}

	return facts, nil
}

func (f *Facts) merge(other *Facts) {
	if other == nil {
		return
	}

	for locale, entry := range other.Locales {
		if f.Locales == nil {
			f.Locales = make(map[string]LocaleFacts)
		}
		f.Locales[normalizeLocale(locale)] = entry
	}

	for code, digits := range other.Currencies {
		if f.Currencies == nil {
			f.Currencies = make(map[string]int)
		}
		f.Currencies[strings.ToUpper(code)] = digits
	}
}

// SeparatorSource exposes the loaded locale conventions, delegating locales
// without an entry to the default resolution chain.
func (f *Facts) SeparatorSource() SeparatorSource {
	return &factsSeparators{facts: f, fallback: defaultSeparators}
}

// DigitsResolver consults the loaded currency digits before the ISO 4217
// data.
func (f *Facts) DigitsResolver() DigitsResolver {
	if f == nil {
		return ISODigits{}
	}
	return StaticDigits{Table: f.Currencies, Fallback: ISODigits{}}
}

type factsSeparators struct {
	facts    *Facts
	fallback SeparatorSource
}

var _ SeparatorSource = (*factsSeparators)(nil)
var _ symbolPositioner = (*factsSeparators)(nil)

func (s *factsSeparators) Separators(locale string) Separators {
	if s.facts != nil {
		for _, candidate := range localeCandidates(locale) {
			if entry, ok := s.facts.Locales[candidate]; ok {
				if sep, ok := entry.separators(); ok {
					return sep
				}
			}
		}
	}
	return s.fallback.Separators(locale)
}

func (s *factsSeparators) SymbolAfterAmount(locale string) bool {
	if s.facts != nil {
		for _, candidate := range localeCandidates(locale) {
			if entry, ok := s.facts.Locales[candidate]; ok && entry.CurrencyPosition != "" {
				return entry.CurrencyPosition == "after"
			}
		}
	}
	return symbolAfterDefault(locale)
}

// separators converts the string fields to runes. A missing group falls to
// the opposite of the decimal so sparse override files stay valid.
func (lf LocaleFacts) separators() (Separators, bool) {
	decimal := firstRune(lf.Decimal)
	if decimal == 0 {
		return Separators{}, false
	}

	group := firstRune(lf.Group)
	if group == 0 {
		if decimal == ',' {
			group = '.'
		} else {
			group = ','
		}
	}
	return Separators{Decimal: decimal, Group: group}, true
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
