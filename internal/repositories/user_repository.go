package repositories

import (
	"time"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	ListExcept(id uint) ([]models.User, error)
	ListAdmins() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	Search(query string, excludeID uint) ([]models.User, error)
	SetOnline(id uint, online bool) error
	CountByRole(role string) (int64, error)
}

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *PostgresUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

func (r *PostgresUserRepository) ListExcept(id uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id <> ?", id).Find(&users).Error
	return users, err
}

func (r *PostgresUserRepository) ListAdmins() ([]models.User, error) {
	var admins []models.User
	err := r.db.Where("role = ?", models.RoleAdmin).Find(&admins).Error
	return admins, err
}

func (r *PostgresUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user together with the rows the user owns. Trades,
// donations and chat messages deliberately survive as orphans.
func (r *PostgresUserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listingIDs []uint
		if err := tx.Model(&models.Listing{}).Where("user_id = ?", id).Pluck("id", &listingIDs).Error; err != nil {
			return err
		}
		if len(listingIDs) > 0 {
			if err := tx.Where("listing_id IN ?", listingIDs).Delete(&models.ListingImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id IN ?", listingIDs).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("listing_id IN ?", listingIDs).Delete(&models.WishlistItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", listingIDs).Delete(&models.Listing{}).Error; err != nil {
				return err
			}
		}
		for _, m := range []interface{}{
			&models.Review{}, &models.Installment{}, &models.CartItem{},
			&models.WishlistItem{}, &models.Notification{},
		} {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

func (r *PostgresUserRepository) Search(query string, excludeID uint) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.
		Where("id <> ?", excludeID).
		Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern).
		Find(&users).Error
	return users, err
}

func (r *PostgresUserRepository) SetOnline(id uint, online bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_online": online,
		"last_seen": time.Now().UTC(),
	}).Error
}

func (r *PostgresUserRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
