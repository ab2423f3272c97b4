package models

// ViewMode selects which projection the renderer produces for the shared
// modal host.
type ViewMode string

const (
	// ViewModeCart shows the full persisted cart with quantity and remove
	// affordances.
	ViewModeCart ViewMode = "cart"
	// ViewModeBuyNow shows a checkout snapshot: quantities are fixed and
	// rows carry no affordances.
	ViewModeBuyNow ViewMode = "buy-now"
)

// ModalState is the single modal host's state machine position.
type ModalState string

const (
	ModalClosed ModalState = "closed"
	ModalCart   ModalState = "cart"
	ModalBuyNow ModalState = "buy-now"
	ModalDetail ModalState = "detail"
)

// CartRow is one rendered line item.
type CartRow struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	Image         string `json:"image"`
	Quantity      int    `json:"quantity"`
	QuantityLabel string `json:"quantity_label,omitempty"`
	LineTotal     string `json:"line_total"`
	CanAdjust     bool   `json:"can_adjust"`
	CanRemove     bool   `json:"can_remove"`
}

// CartView is the complete modal content for one render. Every render fully
// replaces the previous view, so a removed row can never linger.
type CartView struct {
	Mode                 ViewMode  `json:"mode"`
	Empty                bool      `json:"empty"`
	EmptyMessage         string    `json:"empty_message,omitempty"`
	ContinueShoppingHref string    `json:"continue_shopping_href,omitempty"`
	Rows                 []CartRow `json:"rows"`
	Total                string    `json:"total,omitempty"`
	CheckoutEnabled      bool      `json:"checkout_enabled"`
	ShowConfirmPurchase  bool      `json:"show_confirm_purchase"`
	ShowContinueShopping bool      `json:"show_continue_shopping"`
}

// DetailView fills the product detail overlay's fixed content slots.
type DetailView struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	ImageAlt    string `json:"image_alt"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}
