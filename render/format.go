package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lixenwraith/token-bubbles/core"
)

// Sub-cent prices with at least this many leading fractional zeros are compacted
const compactZeros = 2

// priceDigits is the number of significant digits kept after the zero run
const priceDigits = 4

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// FormatPrice renders a USD price
// Sub-cent values compact their zero run into a subscript count, 0.00001234 becomes $0.0₄1234
func FormatPrice(d decimal.Decimal) string {
	if !d.IsPositive() {
		return "$0.00"
	}

	switch {
	case d.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case d.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(thousand):
		return "$" + d.Div(thousand).StringFixed(2) + "K"
	case d.GreaterThanOrEqual(decimal.NewFromInt(1)):
		return "$" + d.StringFixed(4)
	}

	_, frac, _ := strings.Cut(d.String(), ".")
	digits := strings.TrimLeft(frac, "0")
	zeros := len(frac) - len(digits)
	if zeros < compactZeros {
		return "$" + d.StringFixed(4)
	}

	if len(digits) > priceDigits {
		digits = digits[:priceDigits]
	}
	digits = strings.TrimRight(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return "$0.0" + subscript(zeros) + digits
}

// EntityPrice formats the exact price when present, falling back to the float
func EntityPrice(e *core.Entity) string {
	if !e.PriceUSD.IsZero() {
		return FormatPrice(e.PriceUSD)
	}
	if e.Price <= 0 || math.IsNaN(e.Price) || math.IsInf(e.Price, 0) {
		return "$0.00"
	}
	return FormatPrice(decimal.NewFromFloat(e.Price))
}

// FormatUSD renders a dollar amount with K/M/B suffixes, zero shows as a dash
func FormatUSD(v float64) string {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	}
	return fmt.Sprintf("$%.2f", v)
}

// FormatPct renders a signed percentage with two decimals
func FormatPct(pct float64) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		pct = 0
	}
	if pct > 0 {
		return fmt.Sprintf("+%.2f%%", pct)
	}
	return fmt.Sprintf("%.2f%%", pct)
}

func subscript(n int) string {
	var sb strings.Builder
	for _, r := range fmt.Sprint(n) {
		sb.WriteRune('₀' + (r - '0'))
	}
	return sb.String()
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return string(r[:1])
	}
	return string(r[:width-1]) + "…"
}
