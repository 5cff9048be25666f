package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/auctionhub/marketplace-api/internal/models"
)

func bidPath(auctionID uint64) string {
	return fmt.Sprintf("/listings/%d/bid", auctionID)
}

func (env *testEnv) reloadAuction(t *testing.T, id uint64) *models.Auction {
	t.Helper()
	auction, err := env.auctionRepo.FindByID(id)
	require.NoError(t, err)
	return auction
}

func TestBidHandler_FirstBidMayTieInitialPrice(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	env.registerUser(t, "bidder")
	auction := env.createListing(t, seller.ID, 10.00)
	cookies := env.login(t, "bidder")

	// First bid equal to the initial price is accepted
	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 10.00}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 10.00, env.reloadAuction(t, auction.ID).CurrentPrice)

	// A second bid tying the highest bid is rejected
	w = env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 10.00}, cookies)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "Increase the amount of your bid.")
	require.Equal(t, 10.00, env.reloadAuction(t, auction.ID).CurrentPrice)

	// A strictly higher bid is accepted and moves the price
	w = env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 15.00}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 15.00, env.reloadAuction(t, auction.ID).CurrentPrice)
}

func TestBidHandler_FirstBidBelowInitialPriceRejected(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	env.registerUser(t, "bidder")
	auction := env.createListing(t, seller.ID, 10.00)
	cookies := env.login(t, "bidder")

	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 9.99}, cookies)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// No state change: no bid row, price untouched
	var count int64
	env.db.Model(&models.Bid{}).Where("auction_id = ?", auction.ID).Count(&count)
	require.Zero(t, count)
	require.Equal(t, 10.00, env.reloadAuction(t, auction.ID).CurrentPrice)
}

func TestBidHandler_RejectedBelowHighest(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	bob := env.registerUser(t, "bob")
	auction := env.createListing(t, seller.ID, 5.00)

	_, err := env.bidService.PlaceBid(auction, bob.ID, 20.00)
	require.NoError(t, err)

	env.registerUser(t, "carol")
	cookies := env.login(t, "carol")

	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 18.00}, cookies)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, 20.00, env.reloadAuction(t, auction.ID).CurrentPrice)
}

func TestBidHandler_SellerCannotBidOwnListing(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	auction := env.createListing(t, seller.ID, 10.00)
	cookies := env.login(t, "seller")

	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 50.00}, cookies)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestBidHandler_RejectedAfterClose(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	env.registerUser(t, "bidder")
	auction := env.createListing(t, seller.ID, 10.00)

	_, err := env.listingService.CloseListing(auction, seller.ID)
	require.NoError(t, err)

	cookies := env.login(t, "bidder")
	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 50.00}, cookies)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "Bidding is closed")
}

func TestBidHandler_RequiresAuthentication(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	auction := env.createListing(t, seller.ID, 10.00)

	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 50.00}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBidHandler_UnknownListing(t *testing.T) {
	env := setupTestEnv(t)
	env.registerUser(t, "bidder")
	cookies := env.login(t, "bidder")

	w := env.doJSON(t, http.MethodPost, bidPath(9999), map[string]any{"amount": 50.00}, cookies)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestBidHandler_ResponseIncludesNewPrice(t *testing.T) {
	env := setupTestEnv(t)
	seller := env.registerUser(t, "seller")
	env.registerUser(t, "bidder")
	auction := env.createListing(t, seller.ID, 10.00)
	cookies := env.login(t, "bidder")

	w := env.doJSON(t, http.MethodPost, bidPath(auction.ID), map[string]any{"amount": 12.50}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 12.50, response["current_price"])
}
