package models

import "time"

// Bid rows are append-only; they are never updated or deleted.
type Bid struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	AuctionID uint64    `gorm:"not null;index" json:"auction_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Auction Auction `gorm:"foreignKey:AuctionID" json:"auction,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
