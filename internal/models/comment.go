package models

import "time"

// Comment rows are append-only.
type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	AuctionID uint64    `gorm:"not null;index" json:"auction_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Body      string    `gorm:"type:varchar(300);not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Auction Auction `gorm:"foreignKey:AuctionID" json:"auction,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
