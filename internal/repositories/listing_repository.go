package repositories

import (
	"strings"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// ListingRepository defines the interface for listing and listing-image
// operations.
type ListingRepository interface {
	Create(listing *models.Listing) error
	GetByID(id uint) (*models.Listing, error)
	Update(listing *models.Listing) error
	Delete(id uint) error
	ListByUser(userID uint) ([]models.Listing, error)
	ListActiveByUser(userID uint) ([]models.Listing, error)
	Search(filter models.ListingFilter) ([]models.Listing, error)
	Similar(categoryID, excludeID uint, limit int) ([]models.Listing, error)
	IncrementViews(id uint) error
	Count() (int64, error)

	AddImage(image *models.ListingImage) error
	GetImage(id uint) (*models.ListingImage, error)
	DeleteImage(id uint) error
	ImagesByListing(listingID uint) ([]models.ListingImage, error)
	SetPrimaryImage(listingID, imageID uint) error
}

type PostgresListingRepository struct {
	db *gorm.DB
}

func NewPostgresListingRepository(db *gorm.DB) *PostgresListingRepository {
	return &PostgresListingRepository{db: db}
}

func (r *PostgresListingRepository) Create(listing *models.Listing) error {
	return r.db.Create(listing).Error
}

func (r *PostgresListingRepository) GetByID(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := r.db.First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *PostgresListingRepository) Update(listing *models.Listing) error {
	return r.db.Save(listing).Error
}

// Delete removes a listing with its image rows and any cart or wishlist
// references. Trades that point at it keep their foreign key.
func (r *PostgresListingRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&models.ListingImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Listing{}, id).Error
	})
}

func (r *PostgresListingRepository) ListByUser(userID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&listings).Error
	return listings, err
}

func (r *PostgresListingRepository) ListActiveByUser(userID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").Find(&listings).Error
	return listings, err
}

// Search applies the conjunctive filter set over active listings. Every
// supplied predicate must hold; absent predicates are unbounded.
func (r *PostgresListingRepository) Search(filter models.ListingFilter) ([]models.Listing, error) {
	query := r.db.Where("is_active = ?", true)

	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.ListingType != "" {
		query = query.Where("listing_type = ?", filter.ListingType)
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var listings []models.Listing
	err := query.Find(&listings).Error
	return listings, err
}

func (r *PostgresListingRepository) Similar(categoryID, excludeID uint, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.
		Where("category_id = ? AND id <> ? AND is_active = ?", categoryID, excludeID, true).
		Limit(limit).Find(&listings).Error
	return listings, err
}

func (r *PostgresListingRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Listing{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *PostgresListingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Listing{}).Count(&count).Error
	return count, err
}

func (r *PostgresListingRepository) AddImage(image *models.ListingImage) error {
	return r.db.Create(image).Error
}

func (r *PostgresListingRepository) GetImage(id uint) (*models.ListingImage, error) {
	var image models.ListingImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *PostgresListingRepository) DeleteImage(id uint) error {
	return r.db.Delete(&models.ListingImage{}, id).Error
}

func (r *PostgresListingRepository) ImagesByListing(listingID uint) ([]models.ListingImage, error) {
	var images []models.ListingImage
	err := r.db.Where("listing_id = ?", listingID).Order("id").Find(&images).Error
	return images, err
}

// SetPrimaryImage marks one image primary and clears the flag on the rest,
// keeping at most one primary per listing.
func (r *PostgresListingRepository) SetPrimaryImage(listingID, imageID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ListingImage{}).
			Where("listing_id = ?", listingID).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ListingImage{}).
			Where("id = ? AND listing_id = ?", imageID, listingID).
			Update("is_primary", true).Error
	})
}
