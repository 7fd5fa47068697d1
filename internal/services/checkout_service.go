package services

import (
	"fmt"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// CheckoutService converts a cart into completed purchase trades in a single
// transaction: every listing is deactivated, both parties are notified per
// item, and the cart is emptied. An inactive listing anywhere in the cart
// aborts the whole order.
type CheckoutService struct {
	db *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// PlaceOrder returns the number of trades created.
func (s *CheckoutService) PlaceOrder(userID uint) (int, error) {
	var items []models.CartItem
	if err := s.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, validationErr("your cart is empty")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			var listing models.Listing
			if err := tx.First(&listing, item.ListingID).Error; err != nil {
				return err
			}
			if !listing.IsActive {
				return conflictErr(fmt.Sprintf("listing %q is no longer available", listing.Title))
			}

			trade := models.Trade{
				InitiatorID: userID,
				ReceiverID:  listing.UserID,
				ListingID:   listing.ID,
				TradeType:   models.TradeTypePurchase,
				Message:     "Order placed through checkout",
				Status:      models.TradeStatusCompleted,
			}
			if err := tx.Create(&trade).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Listing{}).Where("id = ?", listing.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}

			ref := models.NotificationRef{Kind: models.KindTrade, ID: trade.ID}
			if err := Notify(tx, listing.UserID, "Purchase Completed",
				fmt.Sprintf("A purchase has been completed for your listing: %s", listing.Title), ref); err != nil {
				return err
			}
			if err := Notify(tx, userID, "Order Placed",
				fmt.Sprintf("You have successfully placed an order for %s.", listing.Title), ref); err != nil {
				return err
			}
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
