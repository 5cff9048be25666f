package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/auctionhub/marketplace-api/internal/constants"
	"github.com/auctionhub/marketplace-api/internal/database"
	"github.com/auctionhub/marketplace-api/internal/middleware"
	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/repository"
	"github.com/auctionhub/marketplace-api/internal/services"
)

type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	authService    *services.AuthService
	listingService *services.ListingService
	bidService     *services.BidService
	auctionRepo    repository.AuctionRepository
	watchlistRepo  repository.WatchlistRepository
}

// setupTestEnv builds the full application router against an in-memory
// sqlite database, mirroring the wiring in cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Auction{},
		&models.Bid{},
		&models.Comment{},
		&models.WatchlistEntry{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	auctionRepo := repository.NewAuctionRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)

	authService := services.NewAuthService(userRepo)
	listingService := services.NewListingService(auctionRepo, watchlistRepo)
	bidService := services.NewBidService(auctionRepo)

	authHandler := NewAuthHandler(authService)
	listingHandler := NewListingHandler(listingService)
	bidHandler := NewBidHandler(bidService)
	commentHandler := NewCommentHandler(listingService)
	watchlistHandler := NewWatchlistHandler(watchlistRepo)
	categoryHandler := NewCategoryHandler(listingService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/", listingHandler.Index)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:name", categoryHandler.Listings)
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:             db,
		router:         r,
		authService:    authService,
		listingService: listingService,
		bidService:     bidService,
		auctionRepo:    auctionRepo,
		watchlistRepo:  watchlistRepo,
	}
}

// registerUser creates a user directly through the auth service.
func (env *testEnv) registerUser(t *testing.T, username string) *models.User {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username:     username,
		Email:        username + "@example.com",
		Password:     "supersecret",
		Confirmation: "supersecret",
	})
	require.NoError(t, err)
	return user
}

// login performs a real login request and returns the session cookies.
func (env *testEnv) login(t *testing.T, username string) []*http.Cookie {
	t.Helper()

	w := env.doJSON(t, http.MethodPost, "/login", map[string]string{
		"username": username,
		"password": "supersecret",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

// doJSON performs a request against the test router with an optional JSON
// body and session cookies.
func (env *testEnv) doJSON(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// createListing creates an active listing owned by the given seller.
func (env *testEnv) createListing(t *testing.T, sellerID uint64, initialPrice float64) *models.Auction {
	t.Helper()

	auction, err := env.listingService.CreateListing(services.CreateListingInput{
		SellerID:     sellerID,
		Title:        "Vintage lamp",
		Description:  "A lamp",
		Category:     models.CategoryHome,
		InitialPrice: initialPrice,
	})
	require.NoError(t, err)
	return auction
}
