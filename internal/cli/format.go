// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount as dollars with comma grouping and two
// decimals, e.g. 1234.5 -> "$1,234.50", -200 -> "-$200.00".
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	dot := strings.IndexByte(s, '.')
	out := groupThousands(s[:dot]) + s[dot:]
	if d.IsNegative() {
		return "-$" + out
	}
	return "$" + out
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

// FormatDate renders a calendar date.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDays renders a fractional day count with one decimal, e.g. "30.0".
func FormatDays(d float64) string {
	return fmt.Sprintf("%.1f", d)
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
