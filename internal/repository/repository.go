package repository

import (
	"github.com/auctionhub/marketplace-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// AuctionFilter holds filtering options for listing auctions
type AuctionFilter struct {
	Category   *models.Category
	ActiveOnly bool
	Page       int
	PageSize   int
}

// AuctionRepository defines the interface for auction data access
type AuctionRepository interface {
	// Create creates a new auction
	Create(auction *models.Auction) error

	// FindByID finds an auction by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Auction, error)

	// List retrieves auctions with filtering and pagination
	List(filter AuctionFilter) ([]models.Auction, int64, error)

	// HighestBid returns the highest bid for an auction, or
	// gorm.ErrRecordNotFound if no bids exist
	HighestBid(auctionID uint64) (*models.Bid, error)

	// PlaceBid atomically validates a bid against the current highest bid,
	// inserts the Bid row, and updates the auction's current price
	PlaceBid(auctionID, userID uint64, amount float64) (*models.Bid, error)

	// Close deactivates an auction and resolves the winner from the
	// highest bid, if any
	Close(auctionID uint64) (*models.Auction, error)

	// CreateComment appends a comment to an auction
	CreateComment(comment *models.Comment) error

	// ListComments lists all comments for an auction, oldest first
	ListComments(auctionID uint64) ([]models.Comment, error)
}

// WatchlistRepository defines the interface for watchlist data access
type WatchlistRepository interface {
	// Find finds a watchlist entry for a (user, auction) pair
	Find(auctionID, userID uint64) (*models.WatchlistEntry, error)

	// Toggle flips watchlist membership and reports whether the entry
	// exists after the call
	Toggle(auctionID, userID uint64) (bool, error)

	// ListByUser lists a user's watched auctions
	ListByUser(userID uint64) ([]models.WatchlistEntry, error)
}
