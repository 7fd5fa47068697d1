package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	Add(item *models.WishlistItem) error
	FindByUserAndListing(userID, listingID uint) (*models.WishlistItem, error)
	ItemsByUser(userID uint) ([]models.WishlistItem, error)
	CountByUser(userID uint) (int64, error)
	Delete(id uint) error
}

type PostgresWishlistRepository struct {
	db *gorm.DB
}

func NewPostgresWishlistRepository(db *gorm.DB) *PostgresWishlistRepository {
	return &PostgresWishlistRepository{db: db}
}

func (r *PostgresWishlistRepository) Add(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

func (r *PostgresWishlistRepository) FindByUserAndListing(userID, listingID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.Where("user_id = ? AND listing_id = ?", userID, listingID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresWishlistRepository) ItemsByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Where("user_id = ?", userID).Order("added_at").Find(&items).Error
	return items, err
}

func (r *PostgresWishlistRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresWishlistRepository) Delete(id uint) error {
	return r.db.Delete(&models.WishlistItem{}, id).Error
}
