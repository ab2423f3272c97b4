package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencySymbol is the single storefront currency glyph.
const CurrencySymbol = "₱"

// ParseAmount extracts the numeric amount from a display-formatted price
// string by stripping everything that is not a digit or a decimal point.
// The second return reports whether the remainder parsed as a decimal
// number; callers clamp failures to zero instead of letting a poisoned
// value reach a displayed total.
func ParseAmount(display string) (float64, bool) {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// LineTotal is the item's parsed unit price times its quantity. An
// unparsable price counts as zero.
func LineTotal(item LineItem) float64 {
	amount, ok := ParseAmount(item.Price)
	if !ok {
		return 0
	}
	return amount * float64(item.Quantity)
}

// CartTotal sums LineTotal over the whole sequence.
func CartTotal(cart Cart) float64 {
	total := 0.0
	for _, item := range cart {
		total += LineTotal(item)
	}
	return total
}

// FormatAmount renders an amount the way the storefront displays prices:
// currency glyph plus a fixed two decimal places.
func FormatAmount(amount float64) string {
	return CurrencySymbol + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatQuantityLabel renders the fixed-quantity label shown in buy-now rows.
func FormatQuantityLabel(quantity int) string {
	return fmt.Sprintf("Quantity: %d", quantity)
}
