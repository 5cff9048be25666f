package handlers

import (
	"errors"
	"net/http"

	"github.com/auctionhub/marketplace-api/internal/dto"
	apierrors "github.com/auctionhub/marketplace-api/internal/errors"
	"github.com/auctionhub/marketplace-api/internal/middleware"
	"github.com/auctionhub/marketplace-api/internal/services"
	"github.com/gin-gonic/gin"
)

// BidHandler coordinates bid placement.
type BidHandler struct {
	bidService *services.BidService
}

// NewBidHandler creates a new BidHandler.
func NewBidHandler(bidService *services.BidService) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

// Place records a bid on a listing. The listing is loaded by the
// RequireListing middleware; acceptance rules live in the service and
// repository layers.
func (h *BidHandler) Place(c *gin.Context) {
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

	type PlaceBidRequest struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	bid, err := h.bidService.PlaceBid(&auction, userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBidAmount):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOwnListingBid):
			apierrors.Forbidden(c, "Sellers cannot bid on their own listings")
		case errors.Is(err, services.ErrBiddingClosed):
			apierrors.UnprocessableEntity(c, apierrors.ErrCodeListingInactive, "Bidding is closed for this listing")
		case errors.Is(err, services.ErrBidTooLow):
			apierrors.UnprocessableEntity(c, apierrors.ErrCodeBidRejected, "Increase the amount of your bid.")
		default:
			apierrors.InternalError(c, "Failed to place bid")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bid":           dto.ToBidDTO(*bid),
		"current_price": bid.Amount,
	})
}
