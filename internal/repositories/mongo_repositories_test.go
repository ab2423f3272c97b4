package repositories

import (
	"testing"
	"time"

	"dcreative-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampTimestampsLeavesInputUntouched(t *testing.T) {
	products := []models.Product{
		{Slug: "cherryblossombouquet", Name: "Cherry Blossom Bouquet", Price: "₱350.00"},
		{Slug: "emeraldserenitybouquet", Name: "Emerald Serenity Bouquet", Price: "₱320.00"},
	}

	now := time.Now()
	docs := stampTimestamps(products, now)
	require.Len(t, docs, 2)

	for _, doc := range docs {
		product, ok := doc.(models.Product)
		require.True(t, ok)
		assert.Equal(t, now, product.CreatedAt)
		assert.Equal(t, now, product.UpdatedAt)
	}

	// The source slice keeps its zero timestamps.
	for _, product := range products {
		assert.True(t, product.CreatedAt.IsZero())
		assert.True(t, product.UpdatedAt.IsZero())
	}
}
