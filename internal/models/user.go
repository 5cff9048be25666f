package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"type:varchar(255)" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Listings []Auction        `gorm:"foreignKey:SellerID" json:"-"`
	Bids     []Bid            `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment        `gorm:"foreignKey:UserID" json:"-"`
	Watching []WatchlistEntry `gorm:"foreignKey:UserID" json:"-"`
}
