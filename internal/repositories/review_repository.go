package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository covers admin-moderated site reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	List() ([]models.Review, error)
	Search(query string) ([]models.Review, error)
	Recent(limit int) ([]models.Review, error)
	Delete(id uint) error
	DeleteByUser(userID uint) error
}

type PostgresReviewRepository struct {
	db *gorm.DB
}

func NewPostgresReviewRepository(db *gorm.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *PostgresReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *PostgresReviewRepository) List() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Find(&reviews).Error
	return reviews, err
}

func (r *PostgresReviewRepository) Search(query string) ([]models.Review, error) {
	var reviews []models.Review
	pattern := "%" + query + "%"
	err := r.db.
		Where("title LIKE ? OR content LIKE ? OR tags LIKE ?", pattern, pattern, pattern).
		Find(&reviews).Error
	return reviews, err
}

func (r *PostgresReviewRepository) Recent(limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("date DESC").Limit(limit).Find(&reviews).Error
	return reviews, err
}

func (r *PostgresReviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

func (r *PostgresReviewRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Review{}).Error
}
