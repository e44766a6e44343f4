package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type generatorConfig struct {
	pkg     string
	out     string
	locales []string
}

type separatorEntry struct {
	Locale  string
	Decimal rune
	Group   rune
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "numeric-separators: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "numeric", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "separators_data.go", "path to generated Go file")
	flag.Var(&localeList, "locale", "locale to probe. Repeat the flag or separate values with commas to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	seen := make(map[string]struct{}, len(localeList.items))
	for _, locale := range localeList.items {
		normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		cfg.locales = append(cfg.locales, normalized)
	}

	sort.Strings(cfg.locales)
	return cfg, nil
}

func run(cfg generatorConfig) error {
	var entries []separatorEntry
	for _, locale := range cfg.locales {
		entry, err := probeLocale(locale)
		if err != nil {
			return fmt.Errorf("probe %s: %w", locale, err)
		}
		entries = append(entries, entry)
	}

	source, err := renderSource(cfg.pkg, entries)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

// probeLocale formats two known values through golang.org/x/text and reads
// the separators out of the rendered strings, so the emitted table cannot
// drift from what the runtime formatter produces.
func probeLocale(locale string) (separatorEntry, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return separatorEntry{}, err
	}

	printer := message.NewPrinter(tag)
	entry := separatorEntry{Locale: locale, Decimal: '.', Group: ','}

	probe := printer.Sprintf("%v", number.Decimal(1.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	if r, ok := firstSeparatorRune(probe); ok {
		entry.Decimal = r
	}

	probe = printer.Sprintf("%v", number.Decimal(1000000,
		number.MaxFractionDigits(0)))
	if r, ok := firstSeparatorRune(probe); ok {
		entry.Group = r
	}

	return entry, nil
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

func renderSource(pkg string, entries []separatorEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by numeric-separators. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var separatorTable = map[string]Separators{\n")
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\t%q: {Decimal: %s, Group: %s},\n",
			entry.Locale, runeLiteral(entry.Decimal), runeLiteral(entry.Group))
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

// runeLiteral keeps the generated table ASCII by escaping anything outside
// the basic range.
func runeLiteral(r rune) string {
	if r < 0x80 {
		return strconv.QuoteRune(r)
	}
	return fmt.Sprintf("'\\u%04x'", r)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
