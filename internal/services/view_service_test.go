package services_test

import (
	"testing"

	"dcreative-storefront/internal/models"
	"dcreative-storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyCart(t *testing.T) {
	view := services.NewViewService().Render(models.Cart{}, models.ViewModeCart)

	assert.True(t, view.Empty)
	assert.Equal(t, "Your cart is empty", view.EmptyMessage)
	assert.Equal(t, "#products", view.ContinueShoppingHref)
	assert.Empty(t, view.Rows)
	assert.False(t, view.CheckoutEnabled)
}

func TestRenderCartMode(t *testing.T) {
	cart := models.Cart{
		{ID: "a", Name: "Cherry Blossom Bouquet", Price: "₱350.00", Quantity: 2},
		{ID: "b", Name: "Blue Berry Blossom Bouquet", Price: "₱380.00", Quantity: 1},
	}

	view := services.NewViewService().Render(cart, models.ViewModeCart)

	assert.False(t, view.Empty)
	require.Len(t, view.Rows, 2)

	first := view.Rows[0]
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "₱700.00", first.LineTotal)
	assert.True(t, first.CanAdjust)
	assert.True(t, first.CanRemove)
	assert.Empty(t, first.QuantityLabel)

	assert.Equal(t, "₱1080.00", view.Total)
	assert.True(t, view.CheckoutEnabled)
	assert.False(t, view.ShowConfirmPurchase)
	assert.False(t, view.ShowContinueShopping)
}

func TestRenderBuyNowMode(t *testing.T) {
	snapshot := models.Cart{
		{ID: "a", Name: "Emerald Serenity Bouquet", Price: "₱500.00", Quantity: 1},
	}

	view := services.NewViewService().Render(snapshot, models.ViewModeBuyNow)

	require.Len(t, view.Rows, 1)
	row := view.Rows[0]
	assert.False(t, row.CanAdjust)
	assert.False(t, row.CanRemove)
	assert.Equal(t, "Quantity: 1", row.QuantityLabel)

	assert.Equal(t, "₱500.00", view.Total)
	assert.False(t, view.CheckoutEnabled)
	assert.True(t, view.ShowConfirmPurchase)
	assert.True(t, view.ShowContinueShopping)
}

func TestRenderIsStateless(t *testing.T) {
	cart := models.Cart{{ID: "a", Name: "A", Price: "₱100.00", Quantity: 1}}
	svc := services.NewViewService()

	v1 := svc.Render(cart, models.ViewModeCart)
	v2 := svc.Render(cart, models.ViewModeCart)
	assert.Equal(t, v1, v2)
}

func TestRenderSkipsUnparsablePriceInTotal(t *testing.T) {
	cart := models.Cart{
		{ID: "a", Name: "A", Price: "₱100.00", Quantity: 1},
		{ID: "b", Name: "B", Price: "invalid", Quantity: 3},
	}

	view := services.NewViewService().Render(cart, models.ViewModeCart)
	assert.Equal(t, "₱100.00", view.Total)
}
