package repository

import (
	"errors"

	"github.com/auctionhub/marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormWatchlistRepository is a GORM implementation of WatchlistRepository
type GormWatchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository creates a new WatchlistRepository
func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &GormWatchlistRepository{db: db}
}

// Find finds a watchlist entry for a (user, auction) pair
func (r *GormWatchlistRepository) Find(auctionID, userID uint64) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	if err := r.db.Where("auction_id = ? AND user_id = ?", auctionID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Toggle flips watchlist membership for a (user, auction) pair and reports
// whether the entry exists after the call.
func (r *GormWatchlistRepository) Toggle(auctionID, userID uint64) (bool, error) {
	var watching bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entry models.WatchlistEntry
		err := tx.Where("auction_id = ? AND user_id = ?", auctionID, userID).
			First(&entry).Error

		switch {
		case err == nil:
			watching = false
			return tx.Where("auction_id = ? AND user_id = ?", auctionID, userID).
				Delete(&models.WatchlistEntry{}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			watching = true
			return tx.Create(&models.WatchlistEntry{
				AuctionID: auctionID,
				UserID:    userID,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}

	return watching, nil
}

// ListByUser lists a user's watched auctions
func (r *GormWatchlistRepository) ListByUser(userID uint64) ([]models.WatchlistEntry, error) {
	var entries []models.WatchlistEntry
	if err := r.db.Preload("Auction").Preload("Auction.Seller").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
