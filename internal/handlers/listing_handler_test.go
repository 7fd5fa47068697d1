package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditListingTypeSwitchClearsFields(t *testing.T) {
	db := newTestDB(t)
	listingRepo := repositories.NewPostgresListingRepository(db)
	handler := NewListingHandler(
		listingRepo,
		repositories.NewPostgresCategoryRepository(db),
		repositories.NewPostgresWishlistRepository(db),
		repositories.NewPostgresUserRepository(db),
		services.NewListingSearchService(listingRepo),
		nil,
	)

	owner := createUser(t, db, "owner@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")
	listing := createSaleListing(t, db, owner.ID, category.ID)
	require.NotNil(t, listing.Price)

	form := url.Values{}
	form.Set("title", "Test Item")
	form.Set("description", "A test item")
	form.Set("condition", "Good")
	form.Set("category_id", strconv.Itoa(int(category.ID)))
	form.Set("listing_type", models.ListingTypeExchange)
	form.Set("exchange_preferences", "books or tools")
	// A stale price from the sale form must not survive the switch.
	form.Set("price", "40")

	principal := middleware.Principal{UserID: owner.ID, Role: models.RoleUser}
	c, rec := newContext(http.MethodPut, "/", formBody(form), echo.MIMEApplicationForm, &principal)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(listing.ID)))
	require.NoError(t, handler.EditListing(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var current models.Listing
	require.NoError(t, db.First(&current, listing.ID).Error)
	assert.Equal(t, models.ListingTypeExchange, current.ListingType)
	assert.Nil(t, current.Price)
	require.NotNil(t, current.ExchangePreferences)
	assert.Equal(t, "books or tools", *current.ExchangePreferences)
	assert.Nil(t, current.LoanDuration)
}

func TestEditListingForbiddenForNonOwner(t *testing.T) {
	db := newTestDB(t)
	listingRepo := repositories.NewPostgresListingRepository(db)
	handler := NewListingHandler(
		listingRepo,
		repositories.NewPostgresCategoryRepository(db),
		repositories.NewPostgresWishlistRepository(db),
		repositories.NewPostgresUserRepository(db),
		services.NewListingSearchService(listingRepo),
		nil,
	)

	owner := createUser(t, db, "owner@test.com", models.RoleUser)
	intruder := createUser(t, db, "intruder@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")
	listing := createSaleListing(t, db, owner.ID, category.ID)

	principal := middleware.Principal{UserID: intruder.ID, Role: models.RoleUser}
	c, _ := newContext(http.MethodPut, "/", "", "", &principal)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(listing.ID)))
	err := handler.EditListing(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}

func TestCreateListingRequiresTypeField(t *testing.T) {
	db := newTestDB(t)
	listingRepo := repositories.NewPostgresListingRepository(db)
	handler := NewListingHandler(
		listingRepo,
		repositories.NewPostgresCategoryRepository(db),
		repositories.NewPostgresWishlistRepository(db),
		repositories.NewPostgresUserRepository(db),
		services.NewListingSearchService(listingRepo),
		nil,
	)

	owner := createUser(t, db, "owner@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")

	form := url.Values{}
	form.Set("title", "Bare Sale")
	form.Set("description", "No price given")
	form.Set("condition", "Good")
	form.Set("category_id", strconv.Itoa(int(category.ID)))
	form.Set("listing_type", models.ListingTypeSale)

	principal := middleware.Principal{UserID: owner.ID, Role: models.RoleUser}
	c, _ := newContext(http.MethodPost, "/api/listings", formBody(form), echo.MIMEApplicationForm, &principal)
	err := handler.CreateListing(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSearchListingsResponseShape(t *testing.T) {
	db := newTestDB(t)
	listingRepo := repositories.NewPostgresListingRepository(db)
	handler := NewListingHandler(
		listingRepo,
		repositories.NewPostgresCategoryRepository(db),
		repositories.NewPostgresWishlistRepository(db),
		repositories.NewPostgresUserRepository(db),
		services.NewListingSearchService(listingRepo),
		nil,
	)

	owner := createUser(t, db, "owner@test.com", models.RoleUser)
	category := createCategory(t, db, "Home")
	createSaleListing(t, db, owner.ID, category.ID)

	c, rec := newContext(http.MethodGet, "/api/listings", "", "", nil)
	require.NoError(t, handler.SearchListings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"listing_type":"sale"`)
	assert.Contains(t, rec.Body.String(), `"owner_id":`)
	assert.Contains(t, rec.Body.String(), `"image_url":null`)
}
