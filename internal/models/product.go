package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product model - MongoDB (flexible catalog data). Slug is the resolved
// product identity, so catalog entries merge with cart additions made from
// the product grid.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Name        string             `bson:"name" json:"name"`
	Price       string             `bson:"price" json:"price"` // display-formatted, e.g. "₱350.00"
	Image       string             `bson:"image" json:"image"`
	Rating      string             `bson:"rating" json:"rating"` // rating markup shown verbatim
	Description string             `bson:"description" json:"description"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// DefaultRating is the rating markup used when a product has none stored.
const DefaultRating = `<i class="fas fa-star"></i><i class="fas fa-star"></i><i class="fas fa-star"></i><i class="fas fa-star"></i><i class="fas fa-star-half-alt"></i><span>(4.7)</span>`

// GenericDescription builds the fallback copy shown for products without a
// stored description.
func GenericDescription(title string) string {
	return fmt.Sprintf(`This %s features hand-crafted premium quality materials with attention to detail.
Each bouquet is uniquely designed to bring elegance to any space or occasion.
Our bouquets use only the finest materials to ensure a beautiful, long-lasting arrangement.

Perfect for birthdays, anniversaries, or simply brightening someone's day!

• Handmade with premium materials
• Artistically arranged for maximum visual impact
• Long-lasting beauty
• Comes in a protective packaging`, title)
}
