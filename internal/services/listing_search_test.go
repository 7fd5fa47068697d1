package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/geo"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingSearchFilters(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresListingRepository(db)
	svc := NewListingSearchService(repo)

	owner := createUser(t, db, "owner@test.com", models.RoleUser)
	electronics := createCategory(t, db, "Electronics")
	books := createCategory(t, db, "Books")

	createListing(t, db, owner.ID, electronics.ID, models.ListingTypeSale)
	createListing(t, db, owner.ID, books.ID, models.ListingTypeExchange)
	inactive := createListing(t, db, owner.ID, electronics.ID, models.ListingTypeSale)
	require.NoError(t, db.Model(&models.Listing{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	results, err := svc.Search(models.ListingFilter{CategoryID: electronics.ID}, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Distance)

	results, err = svc.Search(models.ListingFilter{ListingType: models.ListingTypeExchange}, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)

	minPrice := 50.0
	results, err = svc.Search(models.ListingFilter{MinPrice: &minPrice}, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListingSearchRadius(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewPostgresListingRepository(db)
	svc := NewListingSearchService(repo)

	owner := createUser(t, db, "owner@test.com", models.RoleUser)
	category := createCategory(t, db, "Electronics")

	near := createListing(t, db, owner.ID, category.ID, models.ListingTypeSale)
	nearLat, nearLon := 0.1, 0.1
	require.NoError(t, db.Model(&models.Listing{}).Where("id = ?", near.ID).
		Updates(map[string]interface{}{"latitude": nearLat, "longitude": nearLon}).Error)

	far := createListing(t, db, owner.ID, category.ID, models.ListingTypeSale)
	farLat, farLon := 10.0, 10.0
	require.NoError(t, db.Model(&models.Listing{}).Where("id = ?", far.ID).
		Updates(map[string]interface{}{"latitude": farLat, "longitude": farLon}).Error)

	// No coordinates at all.
	createListing(t, db, owner.ID, category.ID, models.ListingTypeSale)

	origin := &geo.Point{Lat: 0, Lon: 0}
	results, err := svc.Search(models.ListingFilter{}, 50, origin)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, near.ID, results[0].ID)
	require.NotNil(t, results[0].Distance)
	assert.InDelta(t, 15.7, *results[0].Distance, 0.2)

	// Without a radius the same query returns everything, unannotated.
	results, err = svc.Search(models.ListingFilter{}, 0, origin)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, result := range results {
		assert.Nil(t, result.Distance)
	}
}
