package services

import (
	"errors"
	"fmt"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// ReviewService creates peer reviews against completed trades and notifies
// the reviewed party.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ReviewTrade files one review per reviewer per trade. The reviewer must be
// a party to the trade and the trade must be completed.
func (s *ReviewService) ReviewTrade(reviewerID, tradeID uint, req models.CreateUserReviewRequest) (*models.UserReview, error) {
	var trade models.Trade
	if err := s.db.First(&trade, tradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if trade.InitiatorID != reviewerID && trade.ReceiverID != reviewerID {
		return nil, ErrForbidden
	}
	if trade.Status != models.TradeStatusCompleted {
		return nil, validationErr("you can only review completed trades")
	}

	var existing models.UserReview
	err := s.db.Where("reviewer_id = ? AND trade_id = ?", reviewerID, tradeID).First(&existing).Error
	if err == nil {
		return nil, validationErr("you have already reviewed this trade")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reviewedID := trade.InitiatorID
	if reviewerID == trade.InitiatorID {
		reviewedID = trade.ReceiverID
	}

	var reviewer models.User
	if err := s.db.First(&reviewer, reviewerID).Error; err != nil {
		return nil, err
	}

	review := models.UserReview{
		ReviewerID: reviewerID,
		ReviewedID: reviewedID,
		TradeID:    &trade.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return Notify(tx, reviewedID, "New Review",
			fmt.Sprintf("%s left you a %d-star review.", reviewer.FullName(), req.Rating),
			models.NotificationRef{Kind: models.KindReview, ID: review.ID})
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}
