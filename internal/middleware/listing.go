package middleware

import (
	"strconv"

	"github.com/auctionhub/marketplace-api/internal/constants"
	"github.com/auctionhub/marketplace-api/internal/database"
	apierrors "github.com/auctionhub/marketplace-api/internal/errors"
	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireListing loads the auction referenced by the :id path parameter and
// stores it in the request context. Unknown IDs surface as 404 here so the
// handlers never see a missing listing.
func RequireListing() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid listing ID")
			c.Abort()
			return
		}

		var auction models.Auction
		if err := database.GetDB().
			Preload("Seller").
			Preload("Winner").
			First(&auction, id).Error; err != nil {
			apierrors.NotFound(c, "Listing not found")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyListing, auction)
		c.Next()
	}
}

// GetListing retrieves the auction loaded by RequireListing from context
func GetListing(c *gin.Context) (models.Auction, bool) {
	listingInterface, exists := c.Get(constants.ContextKeyListing)
	if !exists {
		return models.Auction{}, false
	}

	auction, ok := listingInterface.(models.Auction)
	return auction, ok
}
