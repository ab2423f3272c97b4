package services

import (
	"context"
	"errors"
	"log"

	"dcreative-storefront/internal/models"
	"dcreative-storefront/internal/repositories"
)

// ErrProductNotFound is returned when neither the catalog nor the seed list
// knows the requested product.
var ErrProductNotFound = errors.New("product not found")

// ProductService serves the catalog behind the product grid and the detail
// overlay. The MongoDB repository is optional: without it the built-in seed
// catalog is served from memory.
type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// EnsureCatalog seeds the catalog collection on first run so a fresh
// deployment serves the full product grid.
func (s *ProductService) EnsureCatalog(ctx context.Context) error {
	if s.productRepo == nil {
		return nil
	}

	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Printf("Seeding product catalog with %d products", len(seedCatalog))
	return s.productRepo.CreateMany(ctx, seedCatalog)
}

// List returns the whole catalog in display order.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	if s.productRepo == nil {
		return seedCatalog, nil
	}
	return s.productRepo.List(ctx)
}

// GetBySlug resolves a product by its stable identity. This is the detail
// overlay fallback: when an action arrives with only a product id and no
// card facts, the facts come from here.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if s.productRepo == nil {
		for i := range seedCatalog {
			if seedCatalog[i].Slug == slug {
				return &seedCatalog[i], nil
			}
		}
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Detail fills the detail overlay's fixed content slots, substituting the
// default rating markup and the generated generic description where the
// catalog entry has none.
func (s *ProductService) Detail(ctx context.Context, slug string) (*models.DetailView, error) {
	product, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	rating := product.Rating
	if rating == "" {
		rating = models.DefaultRating
	}

	description := product.Description
	if description == "" {
		description = models.GenericDescription(product.Name)
	}

	return &models.DetailView{
		Title:       product.Name,
		Price:       product.Price,
		Image:       product.Image,
		ImageAlt:    product.Name,
		Rating:      rating,
		Description: description,
	}, nil
}

// seedCatalog is the storefront's bouquet line-up.
var seedCatalog = []models.Product{
	{
		Slug:        "cherryblossombouquet",
		Name:        "Cherry Blossom Bouquet",
		Price:       "₱350.00",
		Image:       "/images/cherry-blossom-bouquet.jpg",
		Featured:    true,
		Description: "🌸 Cherry Blossom Bouquet – A delicate arrangement of soft pink cherry blossoms, embodying the essence of spring and renewal. Each bloom is carefully selected and arranged to create a stunning visual display that brings the beauty of cherry blossoms into any space. Perfect for birthdays, anniversaries, or as a thoughtful gift to brighten someone's day.",
	},
	{
		Slug:        "blueberryblossombouquet",
		Name:        "Blue Berry Blossom Bouquet",
		Price:       "₱380.00",
		Image:       "/images/blue-berry-blossom-bouquet.jpg",
		Featured:    true,
		Description: "🫐 Blue Berry Blossom Bouquet – A striking mix of blue and purple blooms, evoking the richness of a berry-filled garden. This unique arrangement combines various shades of blue and purple flowers to create a cool, calming aesthetic that stands out from traditional bouquets. Ideal for those who appreciate distinctive and elegant floral designs.",
	},
	{
		Slug:        "blossomsymphonybouquet",
		Name:        "Blossom Symphony Bouquet",
		Price:       "₱450.00",
		Image:       "/images/blossom-symphony-bouquet.jpg",
		Featured:    true,
		Description: "🎶 Blossom Symphony Bouquet – A harmonious blend of vibrant seasonal flowers, designed to create a mesmerizing floral masterpiece. This premium arrangement features a carefully orchestrated combination of colors and textures that work together like notes in a beautiful symphony. A perfect centerpiece for special occasions or as a luxury gift.",
	},
	{
		Slug:        "emeraldserenitybouquet",
		Name:        "Emerald Serenity Bouquet",
		Price:       "₱320.00",
		Image:       "/images/emerald-serenity-bouquet.jpg",
		Featured:    true,
		Description: "💚 Emerald Serenity Bouquet – Lush green accents complement serene blooms, offering a refreshing and tranquil touch. This bouquet brings the peaceful essence of a garden into any space with its focus on verdant foliage and calming flower selections. An excellent choice for creating a sense of calm and natural beauty in any environment.",
	},
	{
		Slug:        "etherealpetalradiancebouquet",
		Name:        "Ethereal Petal Radiance Bouquet",
		Price:       "₱420.00",
		Image:       "/images/ethereal-petal-radiance-bouquet.jpg",
		Description: "✨ Ethereal Petal Radiance Bouquet – A dreamy selection of radiant petals that glow with timeless beauty and grace. This arrangement features flowers with luminous qualities that seem to capture and reflect light, creating an almost magical appearance. Perfect for romantic occasions or adding a touch of enchantment to everyday spaces.",
	},
	{
		Slug:        "eternalsunshinebouquet",
		Name:        "Eternal Sunshine Bouquet",
		Price:       "₱300.00",
		Image:       "/images/eternal-sunshine-bouquet.jpg",
		Description: "☀️ Eternal Sunshine Bouquet – Bright and cheerful yellow blooms that bring warmth and joy to any space. This vibrant arrangement is designed to evoke feelings of happiness and optimism with its sunny palette. Ideal for celebrations, congratulations, or simply brightening someone's day with a burst of sunshine.",
	},
	{
		Slug:        "barbieblushdaisybouquet",
		Name:        "Barbie Blush Daisy Bouquet",
		Price:       "₱280.00",
		Image:       "/images/barbie-blush-daisy-bouquet.jpg",
		Description: "💖 Barbie Blush Daisy Bouquet – A playful and feminine bouquet featuring blush-hued daisies, inspired by Barbie's signature charm. This whimsical arrangement combines the innocence of daisies with the iconic pink tones associated with the beloved doll. Perfect for birthdays, girl power celebrations, or adding a touch of fun femininity to any space.",
	},
	{
		Slug:        "lavenderelegancetulipbouquet",
		Name:        "Lavender Elegance Tulip Bouquet",
		Price:       "₱400.00",
		Image:       "/images/lavender-elegance-tulip-bouquet.jpg",
		Description: "💜 Lavender Elegance Tulip Bouquet – Elegant lavender tulips arranged to perfection, exuding sophistication and grace. This refined arrangement showcases the timeless beauty of tulips in soothing lavender hues. Ideal for those who appreciate understated luxury and classic floral design.",
	},
	{
		Slug:        "crimsoncharmdaisybouquet",
		Name:        "Crimson Charm Daisy Bouquet",
		Price:       "₱250.00",
		Image:       "/images/crimson-charm-daisy-bouquet.jpg",
		Description: "❤️ Crimson Charm Daisy Bouquet (Medium) – A vibrant mix of bold red daisies, radiating passion and charm. This medium-sized arrangement makes a striking statement with its rich crimson blooms. Perfect for expressing deep emotions or adding a dramatic touch to home decor.",
	},
	{
		Slug:        "cherryblossomdelightdaisybouquet",
		Name:        "Cherry Blossom Delight Daisy Bouquet",
		Price:       "₱500.00",
		Image:       "/images/cherry-blossom-delight-daisy-bouquet.jpg",
		Description: "🌸 Cherry Blossom Delight Daisy Bouquet (Large) – A larger-than-life arrangement bursting with the beauty of cherry blossoms and daisies. This generous bouquet combines the delicate charm of cherry blossoms with the cheerful simplicity of daisies for a truly delightful visual experience. Ideal for making a big impression at special events or as a luxurious gift.",
	},
	{
		Slug:        "verdantwhimsywrappedbouquet",
		Name:        "Verdant Whimsy Wrapped Bouquet",
		Price:       "₱330.00",
		Image:       "/images/verdant-whimsy-wrapped-bouquet.jpg",
		Description: "🌿 Verdant Whimsy Wrapped Bouquet – A lush, garden-fresh bouquet wrapped with love and care for a whimsical touch. This arrangement celebrates the beauty of greenery with playful accents and a unique wrapping style. Perfect for nature lovers or adding a touch of garden-inspired whimsy to any space.",
	},
	{
		Slug:        "rosromancebloombouquet",
		Name:        "Rosé Romance Bloom Bouquet",
		Price:       "₱450.00",
		Image:       "/images/rose-romance-bloom-bouquet.jpg",
		Description: "🌹 Rosé Romance Bloom Bouquet – A romantic selection of pink and red blooms, perfect for expressing love and admiration. This elegant arrangement combines various shades of pink and red flowers to create a bouquet that speaks the language of romance. Ideal for anniversaries, Valentine's Day, or any occasion when you want to convey deep affection and appreciation.",
	},
}
