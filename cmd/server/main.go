package main

import (
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/auctionhub/marketplace-api/internal/config"
	"github.com/auctionhub/marketplace-api/internal/constants"
	"github.com/auctionhub/marketplace-api/internal/database"
	"github.com/auctionhub/marketplace-api/internal/handlers"
	"github.com/auctionhub/marketplace-api/internal/middleware"
	"github.com/auctionhub/marketplace-api/internal/repository"
	"github.com/auctionhub/marketplace-api/internal/services"
	"github.com/auctionhub/marketplace-api/internal/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		utils.Fatal("Failed to connect to database", map[string]any{"error": err.Error()})
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		utils.Fatal("Failed to run migrations", map[string]any{"error": err.Error()})
	}

	// Initialize Gin router without default middleware for full control
	// over logging
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		utils.Fatal("Failed to create Redis store", map[string]any{"error": err.Error()})
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	auctionRepo := repository.NewAuctionRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	listingService := services.NewListingService(auctionRepo, watchlistRepo)
	bidService := services.NewBidService(auctionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	listingHandler := handlers.NewListingHandler(listingService)
	bidHandler := handlers.NewBidHandler(bidService)
	commentHandler := handlers.NewCommentHandler(listingService)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistRepo)
	categoryHandler := handlers.NewCategoryHandler(listingService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Auction Marketplace API is running",
		})
	})

	// Public routes
	r.GET("/", listingHandler.Index)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:name", categoryHandler.Listings)

	// Listing routes
	r.POST("/add", middleware.RequireAuth(), listingHandler.Create)
	r.GET("/watchlist", middleware.RequireAuth(), watchlistHandler.List)

	listings := r.Group("/listings/:id")
	listings.Use(middleware.RequireListing())
	{
		listings.GET("", middleware.LoadSessionUser(), listingHandler.Detail)
		listings.POST("/close", middleware.RequireAuth(), listingHandler.Close)
		listings.POST("/bid", middleware.RequireAuth(), bidHandler.Place)
		listings.POST("/comment", middleware.RequireAuth(), commentHandler.Create)
		listings.POST("/watch", middleware.RequireAuth(), watchlistHandler.Toggle)
	}

	// Start server
	utils.Info("Server starting", map[string]any{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}
