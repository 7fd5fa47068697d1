package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// TradeService runs the trade lifecycle: creation against a listing, and the
// pending → accepted/rejected → completed transitions with their side
// effects. Transitions are compare-and-set so two concurrent updates cannot
// both fire.
type TradeService struct {
	db *gorm.DB
}

func NewTradeService(db *gorm.DB) *TradeService {
	return &TradeService{db: db}
}

// Create opens a pending trade from initiator against the listing. Purchase
// trades never come through here; checkout creates those completed.
func (s *TradeService) Create(initiatorID, listingID uint, req models.CreateTradeRequest) (*models.Trade, error) {
	var listing models.Listing
	if err := s.db.First(&listing, listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !listing.IsActive {
		return nil, validationErr("this listing is no longer available")
	}
	if listing.UserID == initiatorID {
		return nil, validationErr("you cannot trade with yourself")
	}
	if req.TradeType == models.ListingTypeExchange && req.OfferedListingID == nil {
		return nil, validationErr("please select an item to offer for exchange")
	}
	if req.OfferedListingID != nil {
		var offered models.Listing
		if err := s.db.First(&offered, *req.OfferedListingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErr("offered listing does not exist")
			}
			return nil, err
		}
		if offered.UserID != initiatorID || !offered.IsActive {
			return nil, validationErr("offered listing must be one of your active listings")
		}
	}

	trade := models.Trade{
		InitiatorID:      initiatorID,
		ReceiverID:       listing.UserID,
		ListingID:        listing.ID,
		OfferedListingID: req.OfferedListingID,
		TradeType:        req.TradeType,
		Message:          req.Message,
		Status:           models.TradeStatusPending,
	}
	if req.TradeType == models.TradeTypeLoan && listing.LoanDuration != nil {
		returnDate := time.Now().UTC().AddDate(0, 0, *listing.LoanDuration)
		trade.LoanReturnDate = &returnDate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trade).Error; err != nil {
			return err
		}
		return Notify(tx, listing.UserID,
			"New Trade Request",
			fmt.Sprintf("You have received a new %s request for your listing: %s", req.TradeType, listing.Title),
			models.NotificationRef{Kind: models.KindTrade, ID: trade.ID})
	})
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// UpdateStatus applies a receiver-driven transition. Accepted and rejected
// are reachable from pending only; completed from pending or accepted.
// Completion deactivates the listing (and the offered listing of an
// exchange) and notifies both parties; accept/reject notify the initiator.
func (s *TradeService) UpdateStatus(actorID, tradeID uint, newStatus string) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.First(&trade, tradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if trade.ReceiverID != actorID {
		return nil, ErrForbidden
	}

	var allowedFrom []string
	switch newStatus {
	case models.TradeStatusAccepted, models.TradeStatusRejected:
		allowedFrom = []string{models.TradeStatusPending}
	case models.TradeStatusCompleted:
		allowedFrom = []string{models.TradeStatusPending, models.TradeStatusAccepted}
	default:
		return nil, validationErr("invalid status")
	}

	var listing models.Listing
	if err := s.db.First(&listing, trade.ListingID).Error; err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Trade{}).
			Where("id = ? AND status IN ?", trade.ID, allowedFrom).
			Updates(map[string]interface{}{"status": newStatus, "updated_at": time.Now().UTC()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return conflictErr(fmt.Sprintf("trade is no longer %s", strings.Join(allowedFrom, " or ")))
		}

		ref := models.NotificationRef{Kind: models.KindTrade, ID: trade.ID}

		if newStatus == models.TradeStatusCompleted {
			if err := tx.Model(&models.Listing{}).Where("id = ?", trade.ListingID).
				Update("is_active", false).Error; err != nil {
				return err
			}
			if trade.TradeType == models.TradeTypeExchange && trade.OfferedListingID != nil {
				if err := tx.Model(&models.Listing{}).Where("id = ?", *trade.OfferedListingID).
					Update("is_active", false).Error; err != nil {
					return err
				}
			}
			if err := Notify(tx, trade.InitiatorID, "Trade Completed",
				fmt.Sprintf("Your %s for %s has been completed.", trade.TradeType, listing.Title), ref); err != nil {
				return err
			}
			return Notify(tx, trade.ReceiverID, "Trade Completed",
				fmt.Sprintf("The %s for %s has been completed.", trade.TradeType, listing.Title), ref)
		}

		return Notify(tx, trade.InitiatorID,
			fmt.Sprintf("Trade Request %s", capitalize(newStatus)),
			fmt.Sprintf("Your %s request for %s has been %s.", trade.TradeType, listing.Title, newStatus), ref)
	})
	if err != nil {
		return nil, err
	}

	trade.Status = newStatus
	return &trade, nil
}
