package handlers

import (
	"errors"
	"net/http"

	"github.com/auctionhub/marketplace-api/internal/dto"
	apierrors "github.com/auctionhub/marketplace-api/internal/errors"
	"github.com/auctionhub/marketplace-api/internal/middleware"
	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/services"
	"github.com/auctionhub/marketplace-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// ListingHandler coordinates listing lifecycle HTTP handlers.
type ListingHandler struct {
	listingService *services.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// Index returns all active listings.
func (h *ListingHandler) Index(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	auctions, total, err := h.listingService.ListActive(params.Page, params.Limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch listings")
		return
	}

	c.JSON(http.StatusOK, dto.ToListingListResponse(auctions, params, total))
}

// Create creates a new listing owned by the current user.
func (h *ListingHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateListingRequest struct {
		Title        string  `json:"title" binding:"required,max=50"`
		Description  string  `json:"description" binding:"max=300"`
		Category     string  `json:"category" binding:"max=15"`
		InitialPrice float64 `json:"initial_price" binding:"required,gt=0"`
		ImageURL     string  `json:"image_url" binding:"omitempty,url,max=250"`
	}

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	auction, err := h.listingService.CreateListing(services.CreateListingInput{
		SellerID:     userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     models.Category(req.Category),
		InitialPrice: req.InitialPrice,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTitle),
			errors.Is(err, services.ErrInvalidPrice),
			errors.Is(err, services.ErrInvalidCategory):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to create listing")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingDTO(*auction))
}

// Detail returns one listing with its highest bid, comments, and
// viewer-derived flags. Listing is loaded by the RequireListing middleware.
func (h *ListingHandler) Detail(c *gin.Context) {
	auction, ok := middleware.GetListing(c)
	if !ok {
		apierrors.InternalError(c, "Listing not found in context")
		return
	}

	var viewerID *uint64
	if userID, exists := middleware.GetUserID(c); exists {
		viewerID = &userID
	}

	detail, err := h.listingService.GetListingDetail(&auction, viewerID)
	if err != nil {
		apierrors.InternalError(c, "Failed to load listing")
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailDTO(*detail))
}

// Close deactivates a listing and resolves the winner. Seller only.
func (h *ListingHandler) Close(c *gin.Context) {
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

	closed, err := h.listingService.CloseListing(&auction, userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotSeller):
			apierrors.Forbidden(c, "Only the seller can close this listing")
		case errors.Is(err, services.ErrListingClosed):
			apierrors.UnprocessableEntity(c, apierrors.ErrCodeListingInactive, "Listing is already closed")
		default:
			apierrors.InternalError(c, "Failed to close listing")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDTO(*closed))
}
