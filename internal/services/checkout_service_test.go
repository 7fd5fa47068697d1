package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)

	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)

	_, err := svc.PlaceOrder(buyer.ID)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCheckoutCreatesCompletedPurchases(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)

	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)
	sellerA := createUser(t, db, "seller-a@test.com", models.RoleUser)
	sellerB := createUser(t, db, "seller-b@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")
	listingA := createListing(t, db, sellerA.ID, category.ID, models.ListingTypeSale)
	listingB := createListing(t, db, sellerB.ID, category.ID, models.ListingTypeSale)

	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ListingID: listingA.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ListingID: listingB.ID, Quantity: 1}).Error)

	ordered, err := svc.PlaceOrder(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, ordered)

	var trades []models.Trade
	require.NoError(t, db.Where("initiator_id = ?", buyer.ID).Find(&trades).Error)
	require.Len(t, trades, 2)
	for _, trade := range trades {
		assert.Equal(t, models.TradeTypePurchase, trade.TradeType)
		assert.Equal(t, models.TradeStatusCompleted, trade.Status)
	}

	// Both listings were taken off the market.
	var current models.Listing
	require.NoError(t, db.First(&current, listingA.ID).Error)
	assert.False(t, current.IsActive)
	require.NoError(t, db.First(&current, listingB.ID).Error)
	assert.False(t, current.IsActive)

	// One seller notification per item, one buyer confirmation per item.
	require.Len(t, notificationsFor(t, db, sellerA.ID), 1)
	require.Len(t, notificationsFor(t, db, sellerB.ID), 1)
	require.Len(t, notificationsFor(t, db, buyer.ID), 2)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestCheckoutInactiveListingAbortsWholeOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewCheckoutService(db)

	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)
	seller := createUser(t, db, "seller@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")
	available := createListing(t, db, seller.ID, category.ID, models.ListingTypeSale)
	gone := createListing(t, db, seller.ID, category.ID, models.ListingTypeSale)
	require.NoError(t, db.Model(&models.Listing{}).Where("id = ?", gone.ID).Update("is_active", false).Error)

	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ListingID: available.ID, Quantity: 1}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: buyer.ID, ListingID: gone.ID, Quantity: 1}).Error)

	_, err := svc.PlaceOrder(buyer.ID)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)

	// Nothing committed: no trades, cart untouched, available listing still up.
	var tradeCount int64
	require.NoError(t, db.Model(&models.Trade{}).Count(&tradeCount).Error)
	assert.Zero(t, tradeCount)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&cartCount).Error)
	assert.EqualValues(t, 2, cartCount)

	var current models.Listing
	require.NoError(t, db.First(&current, available.ID).Error)
	assert.True(t, current.IsActive)
}
