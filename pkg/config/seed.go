package config

import (
	"errors"

	"github.com/codeLord61/Exchangify/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultCategories = []models.Category{
	{Name: "Electronics", Description: "Electronic devices and gadgets"},
	{Name: "Clothing", Description: "Apparel and fashion items"},
	{Name: "Home & Garden", Description: "Items for home and garden"},
	{Name: "Books", Description: "Books, textbooks, and literature"},
	{Name: "Sports & Outdoors", Description: "Sports equipment and outdoor gear"},
	{Name: "Toys & Games", Description: "Toys, games, and entertainment items"},
	{Name: "Vehicles", Description: "Cars, bikes, and other vehicles"},
	{Name: "Collectibles", Description: "Collectible items and memorabilia"},
}

// Seed creates the bootstrap admin account and the default category set.
// Safe to run on every startup.
func Seed(db *gorm.DB, log *zap.SugaredLogger) error {
	var admin models.User
	err := db.Where("email = ?", "admin@example.com").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("adminpassword123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = models.User{
			Email:     "admin@example.com",
			Password:  string(hash),
			Role:      models.RoleAdmin,
			FirstName: "Admin",
			LastName:  "User",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Infow("seeded admin user", "id", admin.ID)
	} else if err != nil {
		return err
	}

	for _, category := range defaultCategories {
		var existing models.Category
		err := db.Where("name = ?", category.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&category).Error; err != nil {
				return err
			}
			log.Infow("seeded category", "name", category.Name)
		} else if err != nil {
			return err
		}
	}

	return nil
}
