package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auctionhub/marketplace-api/internal/models"
	"github.com/auctionhub/marketplace-api/internal/services"
)

func TestCategoryHandler_List(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/categories", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Contains(t, response.Categories, "Unspecified")
	require.Contains(t, response.Categories, "Electronics")
	require.True(t, sort.StringsAreSorted(response.Categories))
}

func TestCategoryHandler_Listings(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")

	music, err := env.listingService.CreateListing(services.CreateListingInput{
		SellerID:     seller.ID,
		Title:        "Old guitar",
		Category:     models.CategoryMusic,
		InitialPrice: 50.00,
	})
	require.NoError(t, err)

	env.createListing(t, seller.ID, 10.00) // home category

	// Case-insensitive label match
	w := env.doJSON(t, http.MethodGet, "/categories/music", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Listings []struct {
			ID uint64 `json:"id"`
		} `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Listings, 1)
	require.Equal(t, music.ID, response.Listings[0].ID)
}

func TestCategoryHandler_Listings_Unspecified(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")

	plain, err := env.listingService.CreateListing(services.CreateListingInput{
		SellerID:     seller.ID,
		Title:        "Mystery box",
		Category:     models.CategoryUnspecified,
		InitialPrice: 5.00,
	})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/categories/Unspecified", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Listings []struct {
			ID uint64 `json:"id"`
		} `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Listings, 1)
	require.Equal(t, plain.ID, response.Listings[0].ID)
}

func TestCategoryHandler_Listings_ExcludesClosed(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")

	auction := env.createListing(t, seller.ID, 10.00)
	_, err := env.listingService.CloseListing(auction, seller.ID)
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/categories/Home", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Listings []struct {
			ID uint64 `json:"id"`
		} `json:"listings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response.Listings)
}

func TestCategoryHandler_Listings_UnknownCategory(t *testing.T) {
	env := setupTestEnv(t)

	w := env.doJSON(t, http.MethodGet, "/categories/vehicles", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
