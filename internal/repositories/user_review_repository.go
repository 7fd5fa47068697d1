package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// UserReviewRepository covers peer reviews attached to completed trades.
type UserReviewRepository interface {
	Create(review *models.UserReview) error
	FindByReviewerAndTrade(reviewerID, tradeID uint) (*models.UserReview, error)
	ListForUser(reviewedID uint) ([]models.UserReview, error)
	AverageRating(reviewedID uint) (float64, error)
}

type PostgresUserReviewRepository struct {
	db *gorm.DB
}

func NewPostgresUserReviewRepository(db *gorm.DB) *PostgresUserReviewRepository {
	return &PostgresUserReviewRepository{db: db}
}

func (r *PostgresUserReviewRepository) Create(review *models.UserReview) error {
	return r.db.Create(review).Error
}

func (r *PostgresUserReviewRepository) FindByReviewerAndTrade(reviewerID, tradeID uint) (*models.UserReview, error) {
	var review models.UserReview
	if err := r.db.Where("reviewer_id = ? AND trade_id = ?", reviewerID, tradeID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *PostgresUserReviewRepository) ListForUser(reviewedID uint) ([]models.UserReview, error) {
	var reviews []models.UserReview
	err := r.db.Where("reviewed_id = ?", reviewedID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *PostgresUserReviewRepository) AverageRating(reviewedID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.UserReview{}).
		Where("reviewed_id = ?", reviewedID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
