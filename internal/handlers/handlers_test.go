package handlers

import (
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/labstack/echo/v4"
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

func createSaleListing(t *testing.T, db *gorm.DB, ownerID, categoryID uint) models.Listing {
	t.Helper()

	price := 40.0
	listing := models.Listing{
		Title:       "Test Item",
		Description: "A test item",
		Condition:   "Good",
		ListingType: models.ListingTypeSale,
		Price:       &price,
		IsActive:    true,
		UserID:      ownerID,
		CategoryID:  categoryID,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()

	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// newContext builds an echo context carrying the given principal, mirroring
// what the JWT middleware does for real requests.
func newContext(method, target, body, contentType string, principal *middleware.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set("principal", *principal)
	}
	return c, rec
}

func jsonBody(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func formBody(values url.Values) string {
	return values.Encode()
}
