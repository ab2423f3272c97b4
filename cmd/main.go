package main

import (
	"context"
	"errors"
	"log"

	"dcreative-storefront/configs"
	"dcreative-storefront/internal/handlers"
	"dcreative-storefront/internal/middleware"
	"dcreative-storefront/internal/repositories"
	"dcreative-storefront/internal/services"
	"dcreative-storefront/pkg/auth"
	"dcreative-storefront/pkg/database"
	"dcreative-storefront/pkg/kvstore"
	"dcreative-storefront/pkg/messaging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize the cart document store
	store, err := newStore(config)
	if err != nil {
		log.Fatal("Failed to initialize cart store:", err)
	}
	defer store.Close()

	// Initialize the product catalog (optional; the seed catalog serves
	// from memory when MongoDB is unavailable)
	var productRepo repositories.ProductRepository
	mongoDB, err := database.NewMongo(config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		log.Printf("Warning: MongoDB connection failed: %v. Serving the built-in catalog.", err)
	} else {
		productRepo = repositories.NewProductRepository(mongoDB)
		defer database.CloseMongo(mongoDB)
	}

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize session token manager
	tokenManager := auth.NewTokenManager(config.Session.Secret, config.Session.ExpiryHours)

	// Initialize repositories
	cartRepo := repositories.NewCartRepository(store)
	snapshotRepo := repositories.NewSnapshotRepository(store)

	// Initialize services
	notificationService := services.NewNotificationService(kafkaProducer, config.Kafka.ToastTopic)
	defer notificationService.Shutdown()

	cartService := services.NewCartService(cartRepo, snapshotRepo, kafkaProducer, config.Kafka.CartTopic)
	viewService := services.NewViewService()
	productService := services.NewProductService(productRepo)
	actionService := services.NewActionService(cartService, viewService, productService, notificationService, kafkaProducer, config.Kafka.CartTopic)
	contactService := services.NewContactService(notificationService)

	// Seed the catalog on first run
	if err := productService.EnsureCatalog(context.Background()); err != nil {
		log.Printf("Warning: catalog seeding failed: %v", err)
	}

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(tokenManager)

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(actionService)
	productHandler := handlers.NewProductHandler(productService, actionService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "dcreative-storefront",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	cartHandler.RegisterRoutes(api, sessionMiddleware)
	productHandler.RegisterRoutes(api, sessionMiddleware)
	contactHandler.RegisterRoutes(api, sessionMiddleware)

	log.Printf("🚀 Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}

// newStore selects the key-value backend cart documents live in.
func newStore(config *configs.Config) (kvstore.Store, error) {
	switch config.Store.Backend {
	case "postgres":
		db, err := database.NewPostgres(config.Database.PostgresURL)
		if err != nil {
			return nil, err
		}
		return kvstore.NewPostgresStore(db)
	case "memory":
		log.Println("Using in-memory cart store; carts will not survive a restart")
		return kvstore.NewMemoryStore(), nil
	default:
		store := kvstore.NewRedisStore(config.Redis.Addr, config.Redis.Password, config.Redis.DB)
		if store == nil {
			return nil, errRedisUnavailable
		}
		return store, nil
	}
}

var errRedisUnavailable = errors.New("failed to connect to Redis")
