package repositories

import (
	"context"

	"dcreative-storefront/internal/models"
)

// CartRepository persists the main cart document, one JSON array per
// session. Load never fails on a missing or malformed document; it reads
// as an empty cart.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, sessionID string, cart models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// SnapshotRepository persists the buy-now checkout snapshot under its own
// key, fully independent of the main cart.
type SnapshotRepository interface {
	Load(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, sessionID string, cart models.Cart) error
}

// ProductRepository is the MongoDB catalog access used by the detail
// overlay and the add-to-cart fallback when no card facts are submitted.
type ProductRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, products []models.Product) error
}
