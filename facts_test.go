package numeric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFactsFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFactsLoaderDefaults(t *testing.T) {
	facts, err := NewFactsLoader().Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	en, ok := facts.Locales["en"]
	if !ok {
		t.Fatal("embedded defaults missing locale en")
	}
	if en.Decimal != "." || en.Group != "," {
		t.Errorf("en facts = %q/%q; want ./,", en.Decimal, en.Group)
	}

	if got := facts.Currencies["JPY"]; got != 0 {
		t.Errorf("JPY digits = %d; want 0", got)
	}
	if got := facts.Currencies["JOD"]; got != 3 {
		t.Errorf("JOD digits = %d; want 3", got)
	}
}

func TestFactsLoaderMergesFiles(t *testing.T) {
	jsonPath := writeFactsFile(t, "override.json",
		`{"locales": {"xq": {"decimal": ",", "group": " "}}, "currencies": {"EUR": 3}}`)
	yamlPath := writeFactsFile(t, "override.yaml",
		"currencies:\n  EUR: 4\n  GLD: 0\n")

	facts, err := NewFactsLoader(jsonPath, yamlPath).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if _, ok := facts.Locales["xq"]; !ok {
		t.Error("merged facts missing locale xq from json file")
	}
	if got := facts.Currencies["EUR"]; got != 4 {
		t.Errorf("EUR digits = %d; want later file value 4", got)
	}
	if got := facts.Currencies["GLD"]; got != 0 {
		t.Errorf("GLD digits = %d; want 0", got)
	}
	if got := facts.Currencies["JPY"]; got != 0 {
		t.Errorf("JPY digits = %d; want embedded default 0", got)
	}
	if _, ok := facts.Locales["en"]; !ok {
		t.Error("merge dropped embedded locale en")
	}
}

func TestFactsLoaderRejectsUnsupportedFile(t *testing.T) {
	path := writeFactsFile(t, "facts.toml", "decimal = ','\n")

	_, err := NewFactsLoader(path).Load()
	if err == nil {
		t.Fatal("Load accepted unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("error = %v; want unsupported facts file", err)
	}
}

func TestFactsLoaderMissingFile(t *testing.T) {
	_, err := NewFactsLoader(filepath.Join(t.TempDir(), "absent.json")).Load()
	if err == nil {
		t.Fatal("Load accepted a missing file")
	}
}

func TestFactsSeparatorSource(t *testing.T) {
	facts := &Facts{Locales: map[string]LocaleFacts{
		"xq": {Decimal: ",", Group: " "},
		"xr": {Decimal: ","},
	}}
	source := facts.SeparatorSource()

	if got := source.Separators("xq"); got.Decimal != ',' || got.Group != ' ' {
		t.Errorf("Separators(xq) = %q/%q; want ,/space", got.Decimal, got.Group)
	}
	if got := source.Separators("xr"); got.Decimal != ',' || got.Group != '.' {
		t.Errorf("Separators(xr) = %q/%q; want group defaulted to dot", got.Decimal, got.Group)
	}
	if got := source.Separators("en-US"); got.Decimal != '.' || got.Group != ',' {
		t.Errorf("Separators(en-US) = %q/%q; want fallback chain ./,", got.Decimal, got.Group)
	}
}

func TestFactsDigitsResolver(t *testing.T) {
	facts := &Facts{Currencies: map[string]int{"EUR": 4}}
	resolver := facts.DigitsResolver()

	if got := resolver.FractionDigits("EUR"); got != 4 {
		t.Errorf("FractionDigits(EUR) = %d; want override 4", got)
	}
	if got := resolver.FractionDigits("JPY"); got != 0 {
		t.Errorf("FractionDigits(JPY) = %d; want ISO 0", got)
	}
}

func TestWithFactsWiresConverter(t *testing.T) {
	path := writeFactsFile(t, "site.json",
		`{"locales": {"xq": {"decimal": ",", "group": "."}}}`)
	facts, err := NewFactsLoader(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	conv := New(WithFacts(facts), WithLocale("xq"))
	got, err := conv.ParseNumber("12,34")
	if err != nil {
		t.Fatalf("ParseNumber returned error: %v", err)
	}
	if got != 12.34 {
		t.Errorf("ParseNumber(12,34) with xq facts = %v; want 12.34", got)
	}
}

func TestFactsCurrencyPosition(t *testing.T) {
	facts, err := NewFactsLoader().Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	conv := New(WithFacts(facts), WithLocale("de-DE"), WithCurrency("EUR"))
	if got := conv.FormatMoney(1234.56); got != "1.234,56 €" {
		t.Errorf("FormatMoney = %q; want symbol after amount", got)
	}

	path := writeFactsFile(t, "flip.json",
		`{"locales": {"de": {"decimal": ",", "group": ".", "currency_position": "before"}}}`)
	flipped, err := NewFactsLoader(path).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	conv = New(WithFacts(flipped), WithLocale("de-DE"), WithCurrency("EUR"))
	if got := conv.FormatMoney(1234.56); got != "€ 1.234,56" {
		t.Errorf("FormatMoney = %q; want symbol before amount", got)
	}
}
