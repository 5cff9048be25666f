package models

import "time"

// WatchlistEntry exists at most once per (user, auction) pair; membership is
// toggled by creating or deleting the row.
type WatchlistEntry struct {
	AuctionID uint64    `gorm:"primarykey" json:"auction_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Auction Auction `gorm:"foreignKey:AuctionID" json:"auction,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
