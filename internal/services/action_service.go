package services

import (
	"context"
	"log"
	"sync"
	"time"

	"dcreative-storefront/internal/models"
	"dcreative-storefront/pkg/messaging"
)

// ActionTag is the closed set of user actions the storefront recognizes.
// The platform binding layer (the HTTP handlers) maps raw input to these
// tags; nothing else reaches the stores.
type ActionTag string

const (
	ActionAddToCart        ActionTag = "add-to-cart"
	ActionBuyNow           ActionTag = "buy-now"
	ActionOpenCart         ActionTag = "open-cart"
	ActionCloseCart        ActionTag = "close-cart"
	ActionIncrement        ActionTag = "increment"
	ActionDecrement        ActionTag = "decrement"
	ActionRemove           ActionTag = "remove"
	ActionClearCart        ActionTag = "clear"
	ActionCheckout         ActionTag = "checkout"
	ActionConfirmPurchase  ActionTag = "confirm-purchase"
	ActionContinueShopping ActionTag = "continue-shopping"
	ActionOpenDetail       ActionTag = "open-detail"
	ActionCloseDetail      ActionTag = "close-detail"
)

// ProductFacts is the fact tuple the binding layer extracts from the
// clicked element's product card.
type ProductFacts struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Image  string `json:"image"`
	Rating string `json:"rating,omitempty"`
}

// Action is one tagged user action with its payload.
type Action struct {
	Tag       ActionTag
	Facts     *ProductFacts
	ProductID string
}

// Outcome tells the binding layer what changed: the refreshed badge value,
// the re-rendered modal content when one is open, and the modal position.
// HideAfter is set on animated closes: the host flips state immediately but
// defers the full hide.
type Outcome struct {
	Badge     int                `json:"badge"`
	Modal     models.ModalState  `json:"modal"`
	View      *models.CartView   `json:"view,omitempty"`
	Detail    *models.DetailView `json:"detail,omitempty"`
	HideAfter time.Duration      `json:"hide_after,omitempty"`
}

const (
	checkoutNoticeDuration = 2 * time.Second
	purchaseThanksDuration = 3 * time.Second
	detailCloseDelay       = 300 * time.Millisecond
)

// ActionService routes tagged actions to the cart store and renderer and
// drives the shared modal host's state machine:
// Closed → Open(cart|buy-now|detail) → Closed. Modal positions are
// session-scoped UI state and live in memory only; cart state is what
// persists.
type ActionService struct {
	carts    *CartService
	views    *ViewService
	products *ProductService
	notifier *NotificationService

	events    EventPublisher
	cartTopic string

	mu     sync.Mutex
	modals map[string]models.ModalState
}

func NewActionService(
	carts *CartService,
	views *ViewService,
	products *ProductService,
	notifier *NotificationService,
	events EventPublisher,
	cartTopic string,
) *ActionService {
	return &ActionService{
		carts:     carts,
		views:     views,
		products:  products,
		notifier:  notifier,
		events:    events,
		cartTopic: cartTopic,
		modals:    make(map[string]models.ModalState),
	}
}

// Modal reports the session's current modal position.
func (s *ActionService) Modal(sessionID string) models.ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.modals[sessionID]; ok {
		return state
	}
	return models.ModalClosed
}

func (s *ActionService) setModal(sessionID string, state models.ModalState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modals[sessionID] = state
}

// Dispatch applies one tagged action for the session. Unrecognized or
// underspecified actions are logged and no-op; the UI stays interactive
// after any single failure.
func (s *ActionService) Dispatch(ctx context.Context, sessionID string, action Action) (*Outcome, error) {
	switch action.Tag {
	case ActionAddToCart:
		return s.addToCart(ctx, sessionID, action)
	case ActionBuyNow:
		return s.buyNow(ctx, sessionID, action)
	case ActionOpenCart:
		return s.openCart(ctx, sessionID)
	case ActionCloseCart, ActionContinueShopping:
		return s.closeCart(ctx, sessionID)
	case ActionIncrement:
		return s.adjustQuantity(ctx, sessionID, action.ProductID, +1)
	case ActionDecrement:
		return s.adjustQuantity(ctx, sessionID, action.ProductID, -1)
	case ActionRemove:
		return s.remove(ctx, sessionID, action.ProductID)
	case ActionClearCart:
		return s.clear(ctx, sessionID)
	case ActionCheckout:
		return s.checkout(ctx, sessionID)
	case ActionConfirmPurchase:
		return s.confirmPurchase(ctx, sessionID)
	case ActionOpenDetail:
		return s.openDetail(ctx, sessionID, action)
	case ActionCloseDetail:
		return s.closeDetail(ctx, sessionID)
	default:
		log.Printf("Ignoring unknown action tag %q", action.Tag)
		return s.noop(ctx, sessionID)
	}
}

func (s *ActionService) addToCart(ctx context.Context, sessionID string, action Action) (*Outcome, error) {
	item, ok := s.resolveFacts(ctx, action)
	if !ok {
		// Markup mismatch, not a user error: log and stay quiet.
		log.Printf("No product facts for add-to-cart action")
		return s.noop(ctx, sessionID)
	}

	outcome, cart, err := s.carts.Add(ctx, sessionID, item)
	if err != nil {
		return nil, err
	}

	if outcome == OutcomeIncremented {
		s.notifier.Notify(sessionID, "Increased "+item.Name+" quantity in cart!")
	} else {
		s.notifier.Notify(sessionID, item.Name+" added to cart!")
	}

	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) buyNow(ctx context.Context, sessionID string, action Action) (*Outcome, error) {
	item, ok := s.resolveFacts(ctx, action)
	if !ok {
		log.Printf("No product facts for buy-now action")
		return s.noop(ctx, sessionID)
	}

	if _, err := s.carts.BuyNow(ctx, sessionID, item); err != nil {
		return nil, err
	}

	// Opening the buy-now view also closes any open detail overlay; the
	// modal host is shared.
	s.setModal(sessionID, models.ModalBuyNow)

	cart, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) openCart(ctx context.Context, sessionID string) (*Outcome, error) {
	cart, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.setModal(sessionID, models.ModalCart)
	view := s.views.Render(cart, models.ViewModeCart)
	return &Outcome{
		Badge: cart.ItemCount(),
		Modal: models.ModalCart,
		View:  &view,
	}, nil
}

func (s *ActionService) closeCart(ctx context.Context, sessionID string) (*Outcome, error) {
	// Cart-host closes are immediate; only the detail overlay animates.
	s.setModal(sessionID, models.ModalClosed)

	badge, err := s.carts.ItemCount(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Outcome{Badge: badge, Modal: models.ModalClosed}, nil
}

func (s *ActionService) adjustQuantity(ctx context.Context, sessionID, productID string, delta int) (*Outcome, error) {
	var (
		cart models.Cart
		err  error
	)
	if delta > 0 {
		cart, err = s.carts.Increment(ctx, sessionID, productID)
	} else {
		cart, err = s.carts.Decrement(ctx, sessionID, productID)
	}
	if err != nil {
		return nil, err
	}

	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) remove(ctx context.Context, sessionID, productID string) (*Outcome, error) {
	removedName, cart, err := s.carts.Remove(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}

	if removedName != "" {
		s.notifier.Notify(sessionID, removedName+" removed from cart!")
	}

	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) clear(ctx context.Context, sessionID string) (*Outcome, error) {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	s.notifier.Notify(sessionID, "Cart cleared!")
	return s.outcomeFor(ctx, sessionID, models.Cart{})
}

func (s *ActionService) checkout(ctx context.Context, sessionID string) (*Outcome, error) {
	cart, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(cart) == 0 {
		s.notifier.NotifyFor(sessionID, "Your cart is empty!", checkoutNoticeDuration, KindInfo, nil)
		return s.outcomeFor(ctx, sessionID, cart)
	}

	total := models.CartTotal(cart)
	s.notifier.NotifyFor(sessionID, "Proceeding to checkout...", checkoutNoticeDuration, KindSuccess, func() {
		s.publishCheckout(sessionID, "cart", total, cart)
	})

	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) confirmPurchase(ctx context.Context, sessionID string) (*Outcome, error) {
	snapshot, err := s.carts.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(snapshot) == 0 {
		// Nothing to purchase; no order notice, no checkout event.
		s.notifier.NotifyFor(sessionID, "Your cart is empty!", checkoutNoticeDuration, KindInfo, nil)
		return s.outcomeFor(ctx, sessionID, cart)
	}

	total := models.CartTotal(snapshot)
	s.notifier.NotifyFor(sessionID, "Processing your order...", checkoutNoticeDuration, KindSuccess, func() {
		// The modal stays open until this dismissal fires, then the
		// thank-you toast takes over.
		s.setModal(sessionID, models.ModalClosed)
		s.publishCheckout(sessionID, "buy-now", total, snapshot)
		s.notifier.NotifyFor(sessionID, "Thank you for your purchase!", purchaseThanksDuration, KindSuccess, nil)
	})

	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) openDetail(ctx context.Context, sessionID string, action Action) (*Outcome, error) {
	slug := action.ProductID
	if slug == "" && action.Facts != nil {
		slug = models.ResolveProductID(action.Facts.ID, action.Facts.Name)
	}
	if slug == "" {
		log.Printf("No product reference for open-detail action")
		return s.noop(ctx, sessionID)
	}

	detail, err := s.products.Detail(ctx, slug)
	if err != nil {
		log.Printf("Product detail lookup failed for %q: %v", slug, err)
		return s.noop(ctx, sessionID)
	}

	s.setModal(sessionID, models.ModalDetail)

	badge, err := s.carts.ItemCount(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Badge:  badge,
		Modal:  models.ModalDetail,
		Detail: detail,
	}, nil
}

func (s *ActionService) closeDetail(ctx context.Context, sessionID string) (*Outcome, error) {
	s.setModal(sessionID, models.ModalClosed)

	badge, err := s.carts.ItemCount(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Visual state toggles immediately; the host defers the full hide.
	return &Outcome{
		Badge:     badge,
		Modal:     models.ModalClosed,
		HideAfter: detailCloseDelay,
	}, nil
}

// State reports the session's current badge, modal position and, when a
// modal host mode is open, its rendered content. Dispatching nothing and
// asking for state are the same read.
func (s *ActionService) State(ctx context.Context, sessionID string) (*Outcome, error) {
	cart, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.outcomeFor(ctx, sessionID, cart)
}

func (s *ActionService) noop(ctx context.Context, sessionID string) (*Outcome, error) {
	return s.State(ctx, sessionID)
}

// resolveFacts turns an action's payload into a line item. Card facts win;
// with only a product id, the facts come from the catalog - the equivalent
// of reading the open detail overlay's fields when no card ancestor exists.
func (s *ActionService) resolveFacts(ctx context.Context, action Action) (models.LineItem, bool) {
	if action.Facts != nil && (action.Facts.Name != "" || action.Facts.ID != "") {
		return models.LineItem{
			ID:    models.ResolveProductID(action.Facts.ID, action.Facts.Name),
			Name:  action.Facts.Name,
			Price: action.Facts.Price,
			Image: action.Facts.Image,
		}, true
	}

	if action.ProductID != "" {
		product, err := s.products.GetBySlug(ctx, action.ProductID)
		if err != nil {
			log.Printf("Catalog fallback failed for %q: %v", action.ProductID, err)
			return models.LineItem{}, false
		}
		return models.LineItem{
			ID:    product.Slug,
			Name:  product.Name,
			Price: product.Price,
			Image: product.Image,
		}, true
	}

	return models.LineItem{}, false
}

// outcomeFor builds the standard post-mutation outcome: fresh badge plus a
// re-rendered view when either cart-host mode is open.
func (s *ActionService) outcomeFor(ctx context.Context, sessionID string, cart models.Cart) (*Outcome, error) {
	outcome := &Outcome{
		Badge: cart.ItemCount(),
		Modal: s.Modal(sessionID),
	}

	switch outcome.Modal {
	case models.ModalCart:
		view := s.views.Render(cart, models.ViewModeCart)
		outcome.View = &view
	case models.ModalBuyNow:
		snapshot, err := s.carts.Snapshot(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		view := s.views.Render(snapshot, models.ViewModeBuyNow)
		outcome.View = &view
	}
	return outcome, nil
}

func (s *ActionService) publishCheckout(sessionID, checkoutType string, total float64, items models.Cart) {
	if s.events == nil {
		return
	}

	_ = s.events.SendMessage(s.cartTopic, sessionID, messaging.CheckoutEvent{
		Type:      checkoutType,
		SessionID: sessionID,
		Total:     total,
		Items:     items,
	})
}
