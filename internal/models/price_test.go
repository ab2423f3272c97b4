package models_test

import (
	"testing"

	"dcreative-storefront/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name    string
		display string
		want    float64
		ok      bool
	}{
		{name: "glyph-prefixed price", display: "₱350.00", want: 350, ok: true},
		{name: "cents", display: "₱75.50", want: 75.5, ok: true},
		{name: "plain number", display: "150", want: 150, ok: true},
		{name: "whitespace and text", display: "Price: ₱1,250.00", want: 1250, ok: true},
		{name: "empty string", display: "", want: 0, ok: false},
		{name: "no digits", display: "free!", want: 0, ok: false},
		{name: "multiple dots", display: "₱1.2.3", want: 0, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := models.ParseAmount(tc.display)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 0.0001)
		})
	}
}

func TestLineTotal(t *testing.T) {
	item := models.LineItem{Price: "₱350.00", Quantity: 2}
	assert.InDelta(t, 700.0, models.LineTotal(item), 0.0001)

	// An unparsable price counts as zero instead of poisoning the total.
	broken := models.LineItem{Price: "TBD", Quantity: 3}
	assert.Zero(t, models.LineTotal(broken))
}

func TestCartTotal(t *testing.T) {
	cart := models.Cart{
		{Price: "₱150.00", Quantity: 2},
		{Price: "₱75.50", Quantity: 1},
	}
	assert.InDelta(t, 375.50, models.CartTotal(cart), 0.0001)
}

func TestCartTotalClampsBrokenPrices(t *testing.T) {
	cart := models.Cart{
		{Price: "₱100.00", Quantity: 1},
		{Price: "not a price", Quantity: 5},
	}
	assert.InDelta(t, 100.0, models.CartTotal(cart), 0.0001)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₱375.50", models.FormatAmount(375.5))
	assert.Equal(t, "₱0.00", models.FormatAmount(0))
	assert.Equal(t, "₱700.00", models.FormatAmount(700))
}
