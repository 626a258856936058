// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/splitlog/internal/model"
)

// ShortIDLen is how many id characters list output shows.
const ShortIDLen = 8

// FormatMoney formats an amount with a currency symbol, two decimals and
// comma separators. e.g. ("₹", 1234.5) -> "₹1,234.50"
func FormatMoney(symbol string, v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, FormatNumber(whole.IntPart()), cents)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	head := len(s) % 3
	if head > 0 {
		result.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// ShortID truncates an expense id for display.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}

// FormatStatus summarizes how many shares are paid, e.g. "2/3 paid" or "settled".
func FormatStatus(e model.Expense) string {
	if e.Settled() {
		return "settled"
	}
	return fmt.Sprintf("%d/%d paid", e.PaidCount(), len(e.Friends))
}

// FormatShares lists each participant with a paid marker, e.g. "A ✓, B ✗".
func FormatShares(e model.Expense) string {
	parts := make([]string, len(e.Friends))
	for i, f := range e.Friends {
		mark := "✗"
		if f.Paid {
			mark = "✓"
		}
		parts[i] = f.Name + " " + mark
	}
	return strings.Join(parts, ", ")
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}
