package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

type CartRepository interface {
	Add(item *models.CartItem) error
	GetByID(id uint) (*models.CartItem, error)
	FindByUserAndListing(userID, listingID uint) (*models.CartItem, error)
	ItemsByUser(userID uint) ([]models.CartItem, error)
	CountByUser(userID uint) (int64, error)
	Delete(id uint) error
}

type PostgresCartRepository struct {
	db *gorm.DB
}

func NewPostgresCartRepository(db *gorm.DB) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

func (r *PostgresCartRepository) Add(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *PostgresCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresCartRepository) FindByUserAndListing(userID, listingID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("user_id = ? AND listing_id = ?", userID, listingID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresCartRepository) ItemsByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Where("user_id = ?", userID).Order("added_at").Find(&items).Error
	return items, err
}

func (r *PostgresCartRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PostgresCartRepository) Delete(id uint) error {
	return r.db.Delete(&models.CartItem{}, id).Error
}
