package dto

import (
	"time"

	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/services"
	"github.com/auctionhub/marketplace-api/internal/utils"
)

// ListingDTO represents an auction in API responses
type ListingDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	InitialPrice  float64   `json:"initial_price"`
	CurrentPrice  float64   `json:"current_price"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	ImageURL      string    `json:"image_url"`
	Active        bool      `json:"active"`
	SellerID      uint64    `json:"seller_id"`
	Seller        *UserDTO  `json:"seller,omitempty"`
	Winner        *UserDTO  `json:"winner,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BidDTO represents a bid in API responses
type BidDTO struct {
	ID        uint64    `json:"id"`
	Amount    float64   `json:"amount"`
	UserID    uint64    `json:"user_id"`
	User      *UserDTO  `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID        uint64    `json:"id"`
	Body      string    `json:"body"`
	UserID    uint64    `json:"user_id"`
	User      *UserDTO  `json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListingDetailDTO is the full listing page payload: the auction plus its
// highest bid, comments, and viewer-derived flags.
type ListingDetailDTO struct {
	ListingDTO
	HighestBid  *BidDTO      `json:"highest_bid"`
	Comments    []CommentDTO `json:"comments"`
	IsSeller    bool         `json:"is_seller"`
	OnWatchlist bool         `json:"on_watchlist"`
	IsWinner    bool         `json:"is_winner"`
}

// ListingListResponse represents a paginated list of listings
type ListingListResponse struct {
	Listings   []ListingDTO             `json:"listings"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToListingDTO converts an Auction model to ListingDTO
func ToListingDTO(auction models.Auction) ListingDTO {
	dto := ListingDTO{
		ID:            auction.ID,
		Title:         auction.Title,
		Description:   auction.Description,
		InitialPrice:  auction.InitialPrice,
		CurrentPrice:  auction.CurrentPrice,
		Category:      string(auction.Category),
		CategoryLabel: auction.Category.Label(),
		ImageURL:      auction.ImageURL,
		Active:        auction.Active,
		SellerID:      auction.SellerID,
		CreatedAt:     auction.CreatedAt,
	}

	// Include seller if preloaded
	if auction.Seller.ID != 0 {
		seller := ToUserDTO(auction.Seller)
		dto.Seller = &seller
	}

	// Include winner if resolved and preloaded
	if auction.Winner != nil && auction.Winner.ID != 0 {
		winner := ToUserDTO(*auction.Winner)
		dto.Winner = &winner
	}

	return dto
}

// ToBidDTO converts a Bid model to BidDTO
func ToBidDTO(bid models.Bid) BidDTO {
	dto := BidDTO{
		ID:        bid.ID,
		Amount:    bid.Amount,
		UserID:    bid.UserID,
		CreatedAt: bid.CreatedAt,
	}

	if bid.User.ID != 0 {
		user := ToUserDTO(bid.User)
		dto.User = &user
	}

	return dto
}

// ToCommentDTO converts a Comment model to CommentDTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	dto := CommentDTO{
		ID:        comment.ID,
		Body:      comment.Body,
		UserID:    comment.UserID,
		CreatedAt: comment.CreatedAt,
	}

	if comment.User.ID != 0 {
		user := ToUserDTO(comment.User)
		dto.User = &user
	}

	return dto
}

// ToListingDetailDTO converts a ListingDetail to its response payload
func ToListingDetailDTO(detail services.ListingDetail) ListingDetailDTO {
	out := ListingDetailDTO{
		ListingDTO:  ToListingDTO(*detail.Auction),
		Comments:    make([]CommentDTO, len(detail.Comments)),
		IsSeller:    detail.IsSeller,
		OnWatchlist: detail.OnWatchlist,
		IsWinner:    detail.IsWinner,
	}

	if detail.HighestBid != nil {
		bid := ToBidDTO(*detail.HighestBid)
		out.HighestBid = &bid
	}

	for i, comment := range detail.Comments {
		out.Comments[i] = ToCommentDTO(comment)
	}

	return out
}

// ToListingListResponse converts a slice of auctions to a paginated response
func ToListingListResponse(auctions []models.Auction, params utils.PaginationParams, total int64) ListingListResponse {
	items := make([]ListingDTO, len(auctions))
	for i, auction := range auctions {
		items[i] = ToListingDTO(auction)
	}

	return ListingListResponse{
		Listings: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
