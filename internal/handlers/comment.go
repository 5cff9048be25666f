package handlers

import (
	"net/http"

	"github.com/auctionhub/marketplace-api/internal/dto"
	apierrors "github.com/auctionhub/marketplace-api/internal/errors"
	"github.com/auctionhub/marketplace-api/internal/middleware"
	"github.com/auctionhub/marketplace-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CommentHandler appends comments to listings.
type CommentHandler struct {
	listingService *services.ListingService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(listingService *services.ListingService) *CommentHandler {
	return &CommentHandler{
		listingService: listingService,
	}
}

// Create appends a comment to a listing.
func (h *CommentHandler) Create(c *gin.Context) {
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

	type CreateCommentRequest struct {
		Body string `json:"body" binding:"required,max=300"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.listingService.AddComment(auction.ID, userID, req.Body)
	if err != nil {
		apierrors.InternalError(c, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentDTO(*comment))
}
