package repositories

import (
	"context"
	"errors"

	"dcreative-storefront/internal/models"
	"dcreative-storefront/pkg/kvstore"
)

func cartKey(sessionID string) string {
	return models.CartKey + ":" + sessionID
}

func checkoutKey(sessionID string) string {
	return models.CheckoutKey + ":" + sessionID
}

// Cart repository - key-value backed
type kvCartRepository struct {
	store kvstore.Store
}

func NewCartRepository(store kvstore.Store) CartRepository {
	return &kvCartRepository{store: store}
}

func (r *kvCartRepository) Load(ctx context.Context, sessionID string) (models.Cart, error) {
	raw, err := r.store.Get(ctx, cartKey(sessionID))
	if errors.Is(err, kvstore.ErrNotFound) {
		// Absence of the key is an empty cart, never an error.
		return models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return models.DecodeCart(raw), nil
}

func (r *kvCartRepository) Save(ctx context.Context, sessionID string, cart models.Cart) error {
	doc, err := cart.Encode()
	if err != nil {
		return err
	}
	return r.store.Set(ctx, cartKey(sessionID), doc)
}

func (r *kvCartRepository) Clear(ctx context.Context, sessionID string) error {
	// Deleting the key and writing an empty array are equivalent on the
	// next read; deletion keeps the store tidy.
	return r.store.Delete(ctx, cartKey(sessionID))
}

// Checkout snapshot repository - key-value backed
type kvSnapshotRepository struct {
	store kvstore.Store
}

func NewSnapshotRepository(store kvstore.Store) SnapshotRepository {
	return &kvSnapshotRepository{store: store}
}

func (r *kvSnapshotRepository) Load(ctx context.Context, sessionID string) (models.Cart, error) {
	raw, err := r.store.Get(ctx, checkoutKey(sessionID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	return models.DecodeCart(raw), nil
}

func (r *kvSnapshotRepository) Save(ctx context.Context, sessionID string, cart models.Cart) error {
	doc, err := cart.Encode()
	if err != nil {
		return err
	}
	// Each buy-now overwrites any prior snapshot.
	return r.store.Set(ctx, checkoutKey(sessionID), doc)
}
