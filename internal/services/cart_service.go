package services

import (
	"context"

	"dcreative-storefront/internal/models"
	"dcreative-storefront/internal/repositories"
	"dcreative-storefront/pkg/messaging"
)

// EventPublisher is the slice of the Kafka producer the services use.
type EventPublisher interface {
	SendMessage(topic string, key string, value interface{}) error
}

// AddOutcome tags what Add did, so the caller can pick the right
// notification text.
type AddOutcome string

const (
	OutcomeAdded       AddOutcome = "added"
	OutcomeIncremented AddOutcome = "incremented"
)

// CartService owns the persisted line-item sequence. Every operation
// re-reads the committed document, applies its mutation and writes the
// whole document back; there is no in-memory cache across calls, so the
// single-threaded caller always observes the latest committed state.
type CartService struct {
	cartRepo     repositories.CartRepository
	snapshotRepo repositories.SnapshotRepository
	events       EventPublisher
	cartTopic    string
}

func NewCartService(
	cartRepo repositories.CartRepository,
	snapshotRepo repositories.SnapshotRepository,
	events EventPublisher,
	cartTopic string,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		snapshotRepo: snapshotRepo,
		events:       events,
		cartTopic:    cartTopic,
	}
}

// Add merges the product into the cart. An existing id gains one quantity
// and keeps its original name, price and image (stale display data is not
// refreshed); a new id is appended with quantity 1.
func (s *CartService) Add(ctx context.Context, sessionID string, product models.LineItem) (AddOutcome, models.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	product.Quantity = 1

	outcome := OutcomeAdded
	if i := cart.IndexOf(product.ID); i != -1 {
		cart[i].Quantity++
		outcome = OutcomeIncremented
	} else {
		cart = append(cart, product)
	}

	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return "", nil, err
	}

	s.publish(sessionID, string(outcome), product.ID, cart)
	return outcome, cart, nil
}

// Increment raises the quantity of the item with the given id. A missing id
// is a no-op, not an error.
func (s *CartService) Increment(ctx context.Context, sessionID, id string) (models.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.IndexOf(id)
	if i == -1 {
		return cart, nil
	}

	cart[i].Quantity++
	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.publish(sessionID, "incremented", id, cart)
	return cart, nil
}

// Decrement lowers the quantity of the item with the given id, but never
// below 1: at quantity 1 it is a no-op. Removal is only ever explicit.
func (s *CartService) Decrement(ctx context.Context, sessionID, id string) (models.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.IndexOf(id)
	if i == -1 || cart[i].Quantity <= 1 {
		return cart, nil
	}

	cart[i].Quantity--
	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.publish(sessionID, "decremented", id, cart)
	return cart, nil
}

// Remove deletes the entry with the given id and returns its display name
// for the notification text; an absent id returns an empty name and leaves
// the cart untouched.
func (s *CartService) Remove(ctx context.Context, sessionID, id string) (string, models.Cart, error) {
	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	i := cart.IndexOf(id)
	if i == -1 {
		return "", cart, nil
	}

	removedName := cart[i].Name
	cart = append(cart[:i], cart[i+1:]...)

	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return "", nil, err
	}

	s.publish(sessionID, "removed", id, cart)
	return removedName, cart, nil
}

// Clear resets the cart to an empty sequence.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.cartRepo.Clear(ctx, sessionID); err != nil {
		return err
	}

	s.publish(sessionID, "cleared", "", models.Cart{})
	return nil
}

// Items returns the current persisted sequence; an absent key or malformed
// document reads as empty.
func (s *CartService) Items(ctx context.Context, sessionID string) (models.Cart, error) {
	return s.cartRepo.Load(ctx, sessionID)
}

// ItemCount is the counter-badge value for the session.
func (s *CartService) ItemCount(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

// BuyNow writes a one-item checkout snapshot under its own key. The main
// cart is not read or mutated.
func (s *CartService) BuyNow(ctx context.Context, sessionID string, product models.LineItem) (models.Cart, error) {
	product.Quantity = 1
	snapshot := models.Cart{product}

	if err := s.snapshotRepo.Save(ctx, sessionID, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Snapshot returns the session's current checkout snapshot.
func (s *CartService) Snapshot(ctx context.Context, sessionID string) (models.Cart, error) {
	return s.snapshotRepo.Load(ctx, sessionID)
}

func (s *CartService) publish(sessionID, eventType, productID string, cart models.Cart) {
	if s.events == nil {
		return
	}

	// Event delivery is best-effort; a broker outage must not fail the
	// cart operation.
	_ = s.events.SendMessage(s.cartTopic, sessionID, messaging.CartEvent{
		Type:      eventType,
		SessionID: sessionID,
		ProductID: productID,
		ItemCount: cart.ItemCount(),
	})
}
