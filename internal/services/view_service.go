package services

import (
	"dcreative-storefront/internal/models"
)

// ViewService projects cart state into modal content. It is stateless: the
// same cart and mode always produce the same view, and every view fully
// replaces whatever the modal showed before.
type ViewService struct{}

func NewViewService() *ViewService {
	return &ViewService{}
}

// Render builds the modal content for the given cart and mode.
func (s *ViewService) Render(cart models.Cart, mode models.ViewMode) models.CartView {
	if mode == models.ViewModeCart && len(cart) == 0 {
		return models.CartView{
			Mode:                 mode,
			Empty:                true,
			EmptyMessage:         "Your cart is empty",
			ContinueShoppingHref: "#products",
			Rows:                 []models.CartRow{},
			CheckoutEnabled:      false,
		}
	}

	rows := make([]models.CartRow, 0, len(cart))
	for _, item := range cart {
		row := models.CartRow{
			ID:        item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
			LineTotal: models.FormatAmount(models.LineTotal(item)),
			CanAdjust: mode == models.ViewModeCart,
			CanRemove: mode == models.ViewModeCart,
		}
		if mode == models.ViewModeBuyNow {
			// Snapshot quantities are fixed at buy-now time.
			row.QuantityLabel = models.FormatQuantityLabel(item.Quantity)
		}
		rows = append(rows, row)
	}

	return models.CartView{
		Mode:                 mode,
		Rows:                 rows,
		Total:                models.FormatAmount(models.CartTotal(cart)),
		CheckoutEnabled:      mode == models.ViewModeCart,
		ShowConfirmPurchase:  mode == models.ViewModeBuyNow,
		ShowContinueShopping: mode == models.ViewModeBuyNow,
	}
}
