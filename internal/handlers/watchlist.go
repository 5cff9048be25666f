package handlers

import (
	"net/http"

	"github.com/auctionhub/marketplace-api/internal/dto"
	apierrors "github.com/auctionhub/marketplace-api/internal/errors"
	"github.com/auctionhub/marketplace-api/internal/middleware"
	"github.com/auctionhub/marketplace-api/internal/repository"
	"github.com/gin-gonic/gin"
)

// WatchlistHandler toggles and lists watchlist membership.
type WatchlistHandler struct {
	watchlistRepo repository.WatchlistRepository
}

// NewWatchlistHandler creates a new WatchlistHandler.
func NewWatchlistHandler(watchlistRepo repository.WatchlistRepository) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistRepo: watchlistRepo,
	}
}

// Toggle flips watchlist membership for the current user and listing.
func (h *WatchlistHandler) Toggle(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	auction, ok := middleware.GetListing(c)
	if !ok {
		apierrors.InternalError(c, "Listing not found in context")
		return
	}

	watching, err := h.watchlistRepo.Toggle(auction.ID, userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to update watchlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listing_id": auction.ID,
		"watching":   watching,
	})
}

// List returns the current user's watched listings.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	entries, err := h.watchlistRepo.ListByUser(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch watchlist")
		return
	}

	listings := make([]dto.ListingDTO, len(entries))
	for i, entry := range entries {
		listings[i] = dto.ToListingDTO(entry.Auction)
	}

	c.JSON(http.StatusOK, gin.H{
		"listings": listings,
	})
}
