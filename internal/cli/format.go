// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatCost formats a currency amount with two decimals, e.g. "$5.80".
func FormatCost(cost float64) string {
	if cost < 0 {
		return "-" + FormatCost(-cost)
	}
	if cost >= 1000 {
		whole := int64(cost)
		cents := int64(math.Round((cost - float64(whole)) * 100))
		if cents == 100 {
			whole, cents = whole+1, 0
		}
		return fmt.Sprintf("$%s.%02d", FormatNumber(whole), cents)
	}
	return fmt.Sprintf("$%.2f", cost)
}

// FormatMinutes formats a prep or cook time.
// e.g., 45 -> "45m", 90 -> "1h 30m", 120 -> "2h"
func FormatMinutes(mins int) string {
	if mins <= 0 {
		return "0m"
	}
	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
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
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatDelta formats a signed cost difference, e.g. "+$3.20" or "-$1.05".
func FormatDelta(delta float64) string {
	if delta >= 0 {
		return "+" + FormatCost(delta)
	}
	return "-" + FormatCost(-delta)
}

// FormatKcal formats a calorie amount, e.g. "1,800 kcal".
func FormatKcal(kcal int) string {
	return FormatNumber(int64(kcal)) + " kcal"
}

// FormatDateLabel names a purchase date relative to today:
// "Today", "Yesterday", otherwise e.g. "Mon 12 Oct".
func FormatDateLabel(d, today time.Time) string {
	dy, dm, dd := d.Date()
	ty, tm, td := today.Date()
	day := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	ref := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)

	switch ref.Sub(day) {
	case 0:
		return "Today"
	case 24 * time.Hour:
		return "Yesterday"
	}
	return d.Format("Mon 2 Jan")
}

// FormatYesNo renders a boolean flag for tables.
func FormatYesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
