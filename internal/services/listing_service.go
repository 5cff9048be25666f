package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidTitle    = errors.New("listing title cannot be empty")
	ErrInvalidPrice    = errors.New("initial price must be positive")
	ErrInvalidCategory = errors.New("unknown category")
	ErrNotSeller       = errors.New("only the seller can close this listing")
	ErrListingClosed   = errors.New("listing is already closed")
)

// ListingService provides business logic for auction listings.
type ListingService struct {
	auctionRepo   repository.AuctionRepository
	watchlistRepo repository.WatchlistRepository
}

// NewListingService creates a new ListingService.
func NewListingService(auctionRepo repository.AuctionRepository, watchlistRepo repository.WatchlistRepository) *ListingService {
	return &ListingService{
		auctionRepo:   auctionRepo,
		watchlistRepo: watchlistRepo,
	}
}

// CreateListingInput represents parameters to create a new listing.
type CreateListingInput struct {
	SellerID     uint64
	Title        string
	Description  string
	Category     models.Category
	InitialPrice float64
	ImageURL     string
}

// CreateListing creates a new active auction with the current price set to
// the initial price.
func (s *ListingService) CreateListing(input CreateListingInput) (*models.Auction, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidTitle
	}
	if input.InitialPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	auction := &models.Auction{
		SellerID:     input.SellerID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Category:     input.Category,
		InitialPrice: input.InitialPrice,
		CurrentPrice: input.InitialPrice,
		ImageURL:     input.ImageURL,
		Active:       true,
	}

	if err := s.auctionRepo.Create(auction); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return auction, nil
}

// ListingDetail aggregates everything the listing page needs: the auction,
// its highest bid and comments, plus flags derived from the viewer.
type ListingDetail struct {
	Auction     *models.Auction
	HighestBid  *models.Bid
	Comments    []models.Comment
	IsSeller    bool
	OnWatchlist bool
	IsWinner    bool
}

// GetListingDetail loads the detail view state for a listing. viewerID is
// nil for unauthenticated viewers, for whom all derived flags are false.
func (s *ListingService) GetListingDetail(auction *models.Auction, viewerID *uint64) (*ListingDetail, error) {
	detail := &ListingDetail{Auction: auction}

	highest, err := s.auctionRepo.HighestBid(auction.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load highest bid: %w", err)
	}
	detail.HighestBid = highest

	comments, err := s.auctionRepo.ListComments(auction.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	detail.Comments = comments

	if viewerID != nil {
		detail.IsSeller = auction.SellerID == *viewerID

		if _, err := s.watchlistRepo.Find(auction.ID, *viewerID); err == nil {
			detail.OnWatchlist = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check watchlist: %w", err)
		}

		// Winner is only meaningful once the listing has closed.
		if !auction.Active && auction.WinnerID != nil {
			detail.IsWinner = *auction.WinnerID == *viewerID
		}
	}

	return detail, nil
}

// ListActive returns active listings, newest first.
func (s *ListingService) ListActive(page, pageSize int) ([]models.Auction, int64, error) {
	return s.auctionRepo.List(repository.AuctionFilter{
		ActiveOnly: true,
		Page:       page,
		PageSize:   pageSize,
	})
}

// ListActiveByCategoryLabel returns active listings whose category matches
// the given display label (case-insensitive). "Unspecified" maps to the
// empty-string category.
func (s *ListingService) ListActiveByCategoryLabel(label string, page, pageSize int) ([]models.Auction, int64, error) {
	category, ok := models.CategoryFromLabel(label)
	if !ok {
		return nil, 0, ErrInvalidCategory
	}

	return s.auctionRepo.List(repository.AuctionFilter{
		Category:   &category,
		ActiveOnly: true,
		Page:       page,
		PageSize:   pageSize,
	})
}

// CloseListing deactivates a listing and resolves the winner. Only the
// seller may close their own listing.
func (s *ListingService) CloseListing(auction *models.Auction, actorID uint64) (*models.Auction, error) {
	if auction.SellerID != actorID {
		return nil, ErrNotSeller
	}

	closed, err := s.auctionRepo.Close(auction.ID)
	if err != nil {
		if errors.Is(err, repository.ErrListingClosed) {
			return nil, ErrListingClosed
		}
		return nil, fmt.Errorf("failed to close listing: %w", err)
	}

	return closed, nil
}

// AddComment appends a comment to a listing.
func (s *ListingService) AddComment(auctionID, userID uint64, body string) (*models.Comment, error) {
	comment := &models.Comment{
		AuctionID: auctionID,
		UserID:    userID,
		Body:      body,
	}

	if err := s.auctionRepo.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
