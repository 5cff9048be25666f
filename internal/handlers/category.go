package handlers

import (
	"errors"
	"net/http"

	"github.com/auctionhub/marketplace-api/internal/dto"
	apierrors "github.com/auctionhub/marketplace-api/internal/errors"
	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/services"
	"github.com/auctionhub/marketplace-api/internal/utils"
	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the fixed category enumeration.
type CategoryHandler struct {
	listingService *services.ListingService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(listingService *services.ListingService) *CategoryHandler {
	return &CategoryHandler{
		listingService: listingService,
	}
}

// List returns all category labels, sorted.
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.CategoryLabels(),
	})
}

// Listings returns active listings in the named category. The name is the
// display label, matched case-insensitively; "Unspecified" maps to the
// empty-string category.
func (h *CategoryHandler) Listings(c *gin.Context) {
	label := c.Param("name")
	params := utils.GetPaginationParams(c)

	auctions, total, err := h.listingService.ListActiveByCategoryLabel(label, params.Page, params.Limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			apierrors.NotFound(c, "Category not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch listings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": label,
		"listings": dto.ToListingListResponse(auctions, params, total).Listings,
	})
}
