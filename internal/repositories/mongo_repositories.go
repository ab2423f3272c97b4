package repositories

import (
	"context"
	"time"

	"dcreative-storefront/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Product Repository
type productRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{
		collection: db.Collection("products"),
	}
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *productRepository) CreateMany(ctx context.Context, products []models.Product) error {
	_, err := r.collection.InsertMany(ctx, stampTimestamps(products, time.Now()))
	return err
}

// stampTimestamps builds the insert documents with created/updated set,
// leaving the caller's slice untouched (the seed catalog is shared state).
func stampTimestamps(products []models.Product, now time.Time) []interface{} {
	docs := make([]interface{}, 0, len(products))
	for _, product := range products {
		product.CreatedAt = now
		product.UpdatedAt = now
		docs = append(docs, product)
	}
	return docs
}
