package services

import (
	"github.com/codeLord61/Exchangify/internal/geo"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
)

// ListingSearchService combines the repository filter set with the optional
// geographic radius pass.
type ListingSearchService struct {
	listings repositories.ListingRepository
}

func NewListingSearchService(listings repositories.ListingRepository) *ListingSearchService {
	return &ListingSearchService{listings: listings}
}

// Search returns active listings matching every supplied filter. When
// radiusKm is positive and the requester's location is known, listings
// outside the radius or without coordinates are dropped and survivors are
// annotated with their distance in km, one decimal. Otherwise the radius
// pass is a no-op and no distances are attached.
func (s *ListingSearchService) Search(filter models.ListingFilter, radiusKm float64, origin *geo.Point) ([]models.ListingResult, error) {
	listings, err := s.listings.Search(filter)
	if err != nil {
		return nil, err
	}

	results := make([]models.ListingResult, 0, len(listings))

	if radiusKm <= 0 || origin == nil {
		for _, listing := range listings {
			results = append(results, models.ListingResult{Listing: listing})
		}
		return results, nil
	}

	for _, listing := range listings {
		if listing.Latitude == nil || listing.Longitude == nil {
			continue
		}
		d := geo.Distance(*origin, geo.Point{Lat: *listing.Latitude, Lon: *listing.Longitude})
		if d > radiusKm {
			continue
		}
		rounded := geo.RoundKm(d)
		results = append(results, models.ListingResult{Listing: listing, Distance: &rounded})
	}
	return results, nil
}
