package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  float64
	}{
		{name: "digits only", input: "1234", want: 1234},
		{name: "comma groups dot decimal", input: "1,234.56", want: 1234.56},
		{name: "dot groups comma decimal", input: "1.234,56", want: 1234.56},
		{name: "space groups dot decimal", input: "1 234.56", want: 1234.56},
		{name: "space groups comma decimal", input: "1 234,56", want: 1234.56},
		{name: "nbsp groups comma decimal", input: "1 234,56", want: 1234.56},
		{name: "narrow nbsp groups", input: "1 234,56", want: 1234.56},
		{name: "repeated dots group", input: "1.234.567", want: 1234567},
		{name: "repeated dots short tail", input: "1.234.5", want: 1234.5},
		{name: "repeated commas group", input: "1,234,567", want: 1234567},
		{name: "trailing separator drops", input: "1,234.", want: 1234},
		{name: "negative grouped", input: "-1,234.5", want: -1234.5},
		{name: "negative before symbol", input: "-€ 1,234.56", want: -1234.56},
		{name: "trailing minus", input: "1,234.56-", want: -1234.56},
		{name: "unicode minus sign", input: "−1 234,56", want: -1234.56},
		{name: "currency code prefix", input: "EUR 1,234.56", want: 1234.56},
		{name: "currency symbol attached", input: "$1,234.56", want: 1234.56},
		{name: "label around number", input: "Number is 1,234.56", want: 1234.56},
		{name: "arabic indic digits", input: "١٢٣٤", want: 1234},
		{name: "extended arabic digits", input: "۱۲۳۴", want: 1234},
		{name: "leading decimal point", input: ".5", opts: []Option{WithLocale("en-US")}, want: 0.5},

		{name: "typed en-GB comma groups", input: "12,34", opts: []Option{WithLocale("en-GB")}, want: 1234},
		{name: "typed nl-NL comma decimal", input: "12,34", opts: []Option{WithLocale("nl-NL")}, want: 12.34},
		{name: "typed en-US dot decimal", input: "12.34", opts: []Option{WithLocale("en-US")}, want: 12.34},
		{name: "typed de-DE dot groups", input: "1.234", opts: []Option{WithLocale("de-DE")}, want: 1234},
		{name: "typed fr-FR comma decimal", input: "1234,5", opts: []Option{WithLocale("fr-FR")}, want: 1234.5},

		{name: "pasted short decimal dot", input: "1.2", opts: []Option{WithMode(ModePasted)}, want: 1.2},
		{name: "pasted short decimal comma", input: "1,25", opts: []Option{WithMode(ModePasted)}, want: 1.25},
		{name: "pasted space groups", input: "1 2", opts: []Option{WithMode(ModePasted)}, want: 12},
		{name: "pasted three digit tail groups", input: "1.234", opts: []Option{WithMode(ModePasted)}, want: 1234},

		{name: "separator override wins over locale", input: "12,34", opts: []Option{WithSeparators(',', '.')}, want: 12.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("ParseNumber(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumberRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrEmptyInput},
		{name: "whitespace only", input: "   ", want: ErrEmptyInput},
		{name: "currency code only", input: "EUR", want: ErrNoDigits},
		{name: "split letters", input: "EU R", want: ErrNoDigits},
		{name: "symbol and sign only", input: "€ -", want: ErrNoDigits},
		{name: "separators only", input: ".,.", want: ErrNoDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseNumber(%q) error = %v; want %v", tt.input, err, tt.want)
			}
			if got != 0 {
				t.Errorf("ParseNumber(%q) = %v; want 0 with error", tt.input, got)
			}
		})
	}
}

func TestParseNumberNegativeZero(t *testing.T) {
	for _, input := range []string{"-0", "-0.00", "-0,00"} {
		got, err := ParseNumber(input, WithLocale("en-US"))
		if err != nil {
			t.Fatalf("ParseNumber(%q) returned error: %v", input, err)
		}
		if got != 0 {
			t.Fatalf("ParseNumber(%q) = %v; want 0", input, got)
		}
		if math.Signbit(got) {
			t.Errorf("ParseNumber(%q) kept the negative sign", input)
		}
	}
}

func TestParseNumberRange(t *testing.T) {
	input := "1" + strings.Repeat("0", 400)
	_, err := ParseNumber(input)
	if !errors.Is(err, strconv.ErrRange) {
		t.Fatalf("ParseNumber(huge) error = %v; want range error", err)
	}
}

func TestScrub(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "EUR 1,234.56", want: "1,234.56"},
		{input: "Number is 12", want: "12"},
		{input: "  1 234  ", want: "1 234"},
		{input: "1 234", want: "1 234"},
		{input: "12.", want: "12"},
		{input: ".5", want: ".5"},
		{input: "EU R", want: ""},
		{input: "١٢", want: "12"},
	}

	for _, tt := range tests {
		if got := scrub(tt.input); got != tt.want {
			t.Errorf("scrub(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}
