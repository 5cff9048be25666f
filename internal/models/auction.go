package models

import (
	"time"

	"gorm.io/gorm"
)

type Auction struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	SellerID     uint64         `gorm:"not null;index" json:"seller_id"`
	Title        string         `gorm:"type:varchar(50);not null" json:"title"`
	Description  string         `gorm:"type:varchar(300)" json:"description"`
	InitialPrice float64        `gorm:"type:decimal(10,2);not null" json:"initial_price"`
	CurrentPrice float64        `gorm:"type:decimal(10,2);not null" json:"current_price"`
	Category     Category       `gorm:"type:varchar(15);index" json:"category"`
	ImageURL     string         `gorm:"type:varchar(250)" json:"image_url"`
	Active       bool           `gorm:"not null;default:true;index" json:"active"`
	WinnerID     *uint64        `json:"winner_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Seller   User      `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Winner   *User     `gorm:"foreignKey:WinnerID" json:"winner,omitempty"`
	Bids     []Bid     `gorm:"foreignKey:AuctionID" json:"bids,omitempty"`
	Comments []Comment `gorm:"foreignKey:AuctionID" json:"comments,omitempty"`
}
