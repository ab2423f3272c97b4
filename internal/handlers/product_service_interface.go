package handlers

import (
	"context"

	"dcreative-storefront/internal/models"
)

// ProductServiceInterface defines the contract for the catalog service
type ProductServiceInterface interface {
	List(ctx context.Context) ([]models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
}
