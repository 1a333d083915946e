package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "R$ 0,00"},
		{"9.9", "R$ 9,90"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.89", "R$ 1.234.567,89"},
		{"-42.5", "-R$ 42,50"},
		{"100", "R$ 100,00"},
		{"1000", "R$ 1.000,00"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"12.5", "12,5%"},
		{"12", "12%"},
		{"0", "0%"},
		{"100", "100%"},
		{"33.33", "33,33%"},
		{"-5.5", "-5,5%"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPercentage(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2025", FormatDate(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Data inválida", FormatDate(time.Time{}))

	assert.Equal(t, "05/03/2025 14:30", FormatDateTime(time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "Data inválida", FormatDateTime(time.Time{}))
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain number", "1234", "1234"},
		{"currency symbol and grouping stripped", "R$ 1.234,56", "1234.56"},
		{"decimal comma", "42,50", "42.5"},
		{"negative", "-R$ 10,00", "-10"},
		{"empty input", "", "0"},
		{"letters only", "abc", "0"},
		{"partially typed", "12,", "12"},
		{"double comma is invalid", "1,2,3", "0"},
		{"stray minus is invalid", "--5", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCurrency(tt.input)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestParsePercentage(t *testing.T) {
	assert.True(t, ParsePercentage("12,5%").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, ParsePercentage("").IsZero())
}
