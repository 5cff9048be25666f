package repository

import (
	"errors"

	"github.com/auctionhub/marketplace-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrBidTooLow is returned when a bid does not beat the current highest
	// bid, or does not meet the initial price on a first bid.
	ErrBidTooLow = errors.New("auction repository: bid amount too low")
	// ErrListingClosed is returned when bidding on or closing an auction
	// that is no longer active.
	ErrListingClosed = errors.New("auction repository: listing is closed")
)

// GormAuctionRepository is a GORM implementation of AuctionRepository
type GormAuctionRepository struct {
	db *gorm.DB
}

// NewAuctionRepository creates a new AuctionRepository
func NewAuctionRepository(db *gorm.DB) AuctionRepository {
	return &GormAuctionRepository{db: db}
}

// Create creates a new auction
func (r *GormAuctionRepository) Create(auction *models.Auction) error {
	return r.db.Create(auction).Error
}

// FindByID finds an auction by ID with optional preloading
func (r *GormAuctionRepository) FindByID(id uint64, preload ...string) (*models.Auction, error) {
	var auction models.Auction
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&auction, id).Error; err != nil {
		return nil, err
	}

	return &auction, nil
}

// List retrieves auctions with filtering and pagination
func (r *GormAuctionRepository) List(filter AuctionFilter) ([]models.Auction, int64, error) {
	var auctions []models.Auction

	query := r.db.Model(&models.Auction{})

	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		listQuery = listQuery.Offset(offset).Limit(filter.PageSize)
	}

	if err := listQuery.Preload("Seller").Find(&auctions).Error; err != nil {
		return nil, 0, err
	}

	return auctions, total, nil
}

// HighestBid returns the highest bid for an auction
func (r *GormAuctionRepository) HighestBid(auctionID uint64) (*models.Bid, error) {
	return highestBid(r.db, auctionID)
}

func highestBid(db *gorm.DB, auctionID uint64) (*models.Bid, error) {
	var bid models.Bid
	if err := db.Preload("User").
		Where("auction_id = ?", auctionID).
		Order("amount DESC").
		First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}

// lockForUpdate adds a row lock where the dialect supports it. SQLite (the
// test database) has no FOR UPDATE; its writes are serialized anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// PlaceBid atomically validates and records a bid, then updates the
// auction's current price. The auction row is locked for the duration of
// the transaction so concurrent bidders serialize on the same price check.
func (r *GormAuctionRepository) PlaceBid(auctionID, userID uint64, amount float64) (*models.Bid, error) {
	var bid *models.Bid

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var auction models.Auction
		if err := lockForUpdate(tx).First(&auction, auctionID).Error; err != nil {
			return err
		}

		if !auction.Active {
			return ErrListingClosed
		}

		highest, err := highestBid(tx, auctionID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// The first bid may tie the initial price; later bids must
		// strictly exceed the current highest bid.
		if highest != nil {
			if amount <= highest.Amount {
				return ErrBidTooLow
			}
		} else if amount < auction.InitialPrice {
			return ErrBidTooLow
		}

		bid = &models.Bid{
			AuctionID: auctionID,
			UserID:    userID,
			Amount:    amount,
		}
		if err := tx.Create(bid).Error; err != nil {
			return err
		}

		return tx.Model(&auction).Update("current_price", amount).Error
	})
	if err != nil {
		return nil, err
	}

	return bid, nil
}

// Close deactivates an auction and resolves the winner from the highest
// bid. An auction with no bids closes with no winner.
func (r *GormAuctionRepository) Close(auctionID uint64) (*models.Auction, error) {
	var auction models.Auction

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&auction, auctionID).Error; err != nil {
			return err
		}

		if !auction.Active {
			return ErrListingClosed
		}

		auction.Active = false

		highest, err := highestBid(tx, auctionID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			auction.WinnerID = nil
		} else {
			auction.WinnerID = &highest.UserID
		}

		return tx.Save(&auction).Error
	})
	if err != nil {
		return nil, err
	}

	if auction.WinnerID != nil {
		var winner models.User
		if err := r.db.First(&winner, *auction.WinnerID).Error; err == nil {
			auction.Winner = &winner
		}
	}

	return &auction, nil
}

// CreateComment appends a comment to an auction
func (r *GormAuctionRepository) CreateComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListComments lists all comments for an auction, oldest first
func (r *GormAuctionRepository) ListComments(auctionID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Preload("User").
		Where("auction_id = ?", auctionID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
