package handlers

import (
	"net/http"
	"testing"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistToggle(t *testing.T) {
	db := newTestDB(t)
	handler := NewWishlistHandler(
		repositories.NewPostgresWishlistRepository(db),
		repositories.NewPostgresListingRepository(db),
	)

	seller := createUser(t, db, "seller@test.com", models.RoleUser)
	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")
	listing := createSaleListing(t, db, seller.ID, category.ID)

	principal := middleware.Principal{UserID: buyer.ID, Role: models.RoleUser}

	c, rec := newContext(http.MethodPost, "/api/wishlist/toggle",
		jsonBody(`{"listing_id": %d}`, listing.ID), echo.MIMEApplicationJSON, &principal)
	require.NoError(t, handler.Toggle(c))
	assert.Contains(t, rec.Body.String(), `"in_wishlist":true`)

	// Toggling again removes the item.
	c, rec = newContext(http.MethodPost, "/api/wishlist/toggle",
		jsonBody(`{"listing_id": %d}`, listing.ID), echo.MIMEApplicationJSON, &principal)
	require.NoError(t, handler.Toggle(c))
	assert.Contains(t, rec.Body.String(), `"in_wishlist":false`)

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Where("user_id = ?", buyer.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWishlistToggleUnknownListing(t *testing.T) {
	db := newTestDB(t)
	handler := NewWishlistHandler(
		repositories.NewPostgresWishlistRepository(db),
		repositories.NewPostgresListingRepository(db),
	)

	buyer := createUser(t, db, "buyer@test.com", models.RoleUser)
	principal := middleware.Principal{UserID: buyer.ID, Role: models.RoleUser}

	c, _ := newContext(http.MethodPost, "/api/wishlist/toggle",
		`{"listing_id": 999}`, echo.MIMEApplicationJSON, &principal)
	err := handler.Toggle(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
