package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewTradeNotifiesCounterparty(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	seller := createUser(t, db, "seller@test.com", models.RoleUser)
	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)
	category := createCategory(t, db, "Electronics")
	listing := createListing(t, db, seller.ID, category.ID, models.ListingTypeSale)

	trade := models.Trade{
		InitiatorID: buyer.ID,
		ReceiverID:  seller.ID,
		ListingID:   listing.ID,
		TradeType:   models.TradeTypePurchase,
		Status:      models.TradeStatusCompleted,
	}
	require.NoError(t, db.Create(&trade).Error)

	review, err := svc.ReviewTrade(buyer.ID, trade.ID, models.CreateUserReviewRequest{
		Rating:  5,
		Comment: "Smooth handover",
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, review.ReviewedID)
	require.NotNil(t, review.TradeID)
	assert.Equal(t, trade.ID, *review.TradeID)

	notifications := notificationsFor(t, db, seller.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New Review", notifications[0].Title)
	assert.Contains(t, notifications[0].Message, "5-star")
}

func TestReviewTradeGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db)

	seller := createUser(t, db, "seller@test.com", models.RoleUser)
	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)
	outsider := createUser(t, db, "outsider@test.com", models.RoleUser)
	category := createCategory(t, db, "Electronics")
	listing := createListing(t, db, seller.ID, category.ID, models.ListingTypeSale)

	pending := models.Trade{
		InitiatorID: buyer.ID,
		ReceiverID:  seller.ID,
		ListingID:   listing.ID,
		TradeType:   models.TradeTypeLoan,
		Status:      models.TradeStatusPending,
	}
	require.NoError(t, db.Create(&pending).Error)

	// Only completed trades are reviewable.
	_, err := svc.ReviewTrade(buyer.ID, pending.ID, models.CreateUserReviewRequest{Rating: 4})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	completed := models.Trade{
		InitiatorID: buyer.ID,
		ReceiverID:  seller.ID,
		ListingID:   listing.ID,
		TradeType:   models.TradeTypePurchase,
		Status:      models.TradeStatusCompleted,
	}
	require.NoError(t, db.Create(&completed).Error)

	// Outsiders cannot review.
	_, err = svc.ReviewTrade(outsider.ID, completed.ID, models.CreateUserReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, ErrForbidden)

	// One review per reviewer per trade.
	_, err = svc.ReviewTrade(buyer.ID, completed.ID, models.CreateUserReviewRequest{Rating: 4})
	require.NoError(t, err)
	_, err = svc.ReviewTrade(buyer.ID, completed.ID, models.CreateUserReviewRequest{Rating: 2})
	require.ErrorAs(t, err, &verr)

	// The other party can still file their own.
	_, err = svc.ReviewTrade(seller.ID, completed.ID, models.CreateUserReviewRequest{Rating: 5})
	require.NoError(t, err)
}
