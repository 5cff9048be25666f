package services

import (
	"errors"
	"fmt"

	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/repository"
)

var (
	ErrInvalidBidAmount = errors.New("bid amount must be positive")
	ErrBidTooLow        = errors.New("bid amount too low")
	ErrOwnListingBid    = errors.New("sellers cannot bid on their own listings")
	ErrBiddingClosed    = errors.New("bidding is closed for this listing")
)

// BidService handles bid placement.
type BidService struct {
	auctionRepo repository.AuctionRepository
}

// NewBidService creates a new BidService.
func NewBidService(auctionRepo repository.AuctionRepository) *BidService {
	return &BidService{
		auctionRepo: auctionRepo,
	}
}

// PlaceBid validates and records a bid on a listing. Acceptance is decided
// inside a single repository transaction: the first bid must meet the
// initial price, every later bid must exceed the current highest bid.
func (s *BidService) PlaceBid(auction *models.Auction, bidderID uint64, amount float64) (*models.Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidBidAmount
	}
	if auction.SellerID == bidderID {
		return nil, ErrOwnListingBid
	}

	bid, err := s.auctionRepo.PlaceBid(auction.ID, bidderID, amount)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBidTooLow):
			return nil, ErrBidTooLow
		case errors.Is(err, repository.ErrListingClosed):
			return nil, ErrBiddingClosed
		default:
			return nil, fmt.Errorf("failed to place bid: %w", err)
		}
	}

	return bid, nil
}
