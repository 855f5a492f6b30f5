package decfmt

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer", "85", "85"},
		{"dot decimal", "2.5", "2.5"},
		{"comma decimal", "2,5", "2.5"},
		{"german thousands", "1.234,50", "1234.50"},
		{"english thousands", "1,234.50", "1234.50"},
		{"single dot is decimal", "1.234", "1.234"},
		{"single comma is decimal", "1,234", "1.234"},
		{"repeated dots are thousands", "1.234.500", "1234500"},
		{"repeated commas are thousands", "1,234,500", "1234500"},
		{"space thousands", "1 234,50", "1234.50"},
		{"surrounding whitespace", "  42  ", "42"},
		{"negative", "-12,5", "-12.5"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q) error = %v", tt.input, err)
			}
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"ten",
		"12a",
		"1.2,3.4",
		"1,23,4.5,6",
		"--5",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseAmount(input); !errors.Is(err, ErrAmount) {
				t.Errorf("ParseAmount(%q) error = %v, want ErrAmount", input, err)
			}
		})
	}
}
