package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Trade{},
		&models.Donation{},
		&models.Installment{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.Review{},
		&models.UserReview{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	t.Helper()

	user := models.User{
		Email:     email,
		Password:  "hashed",
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createListing(t *testing.T, db *gorm.DB, ownerID, categoryID uint, listingType string) models.Listing {
	t.Helper()

	listing := models.Listing{
		Title:       "Test Item",
		Description: "A test item",
		Condition:   "Good",
		ListingType: listingType,
		IsActive:    true,
		UserID:      ownerID,
		CategoryID:  categoryID,
	}
	switch listingType {
	case models.ListingTypeSale:
		price := 25.0
		listing.Price = &price
	case models.ListingTypeExchange:
		prefs := "books or tools"
		listing.ExchangePreferences = &prefs
	case models.ListingTypeLoan:
		days := 14
		listing.LoanDuration = &days
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uint) []models.Notification {
	t.Helper()

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Find(&notifications).Error)
	return notifications
}
