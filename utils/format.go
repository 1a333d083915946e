package utils

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const invalidDate = "Data inválida"

// FormatCurrency renders an amount in Brazilian currency format,
// e.g. "R$ 1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	fixed := amount.Abs().StringFixed(2)
	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]
	return sign + "R$ " + groupThousands(intPart) + "," + decPart
}

// FormatPercentage renders a whole-number percentage, e.g. 12.5 -> "12,5%".
func FormatPercentage(value decimal.Decimal) string {
	s := value.StringFixed(2)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return strings.ReplaceAll(s, ".", ",") + "%"
}

// FormatDate renders a date as day/month/year.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return invalidDate
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders a date with its time of day.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return invalidDate
	}
	return t.Format("02/01/2006 15:04")
}

// ParseCurrency reads user-typed monetary input. Everything except digits,
// comma and minus is stripped, the decimal comma becomes a point, and any
// input that still does not parse yields zero. Partially typed values are
// expected here; callers validate before persisting.
func ParseCurrency(input string) decimal.Decimal {
	cleaned := stripNonNumeric(input)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.TrimSuffix(cleaned, ".")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// ParsePercentage reads user-typed percentage input under the same tolerant
// contract as ParseCurrency.
func ParsePercentage(input string) decimal.Decimal {
	return ParseCurrency(input)
}

func stripNonNumeric(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '-' {
			return r
		}
		return -1
	}, s)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
