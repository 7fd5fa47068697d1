package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codeLord61/Exchangify/internal/geo"
	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ListingHandler covers the listing CRUD surface and the public search API.
type ListingHandler struct {
	listingRepository  repositories.ListingRepository
	categoryRepository repositories.CategoryRepository
	wishlistRepository repositories.WishlistRepository
	userRepository     repositories.UserRepository
	search             *services.ListingSearchService
	store              *storage.Store
}

func NewListingHandler(
	listingRepo repositories.ListingRepository,
	categoryRepo repositories.CategoryRepository,
	wishlistRepo repositories.WishlistRepository,
	userRepo repositories.UserRepository,
	search *services.ListingSearchService,
	store *storage.Store,
) *ListingHandler {
	return &ListingHandler{
		listingRepository:  listingRepo,
		categoryRepository: categoryRepo,
		wishlistRepository: wishlistRepo,
		userRepository:     userRepo,
		search:             search,
		store:              store,
	}
}

func (h *ListingHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/listings", h.SearchListings)
	g.GET("/listings/:id", h.ViewListing)
}

func (h *ListingHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/listings", h.CreateListing)
	g.PUT("/listings/:id", h.EditListing)
	g.DELETE("/listings/:id", h.DeleteListing)
	g.GET("/my/listings", h.MyListings)
}

// SearchListings is the marketplace query endpoint. All filters are
// conjunctive; the radius filter only engages for signed-in requesters with
// a known location.
func (h *ListingHandler) SearchListings(c echo.Context) error {
	filter := models.ListingFilter{
		ListingType: c.QueryParam("type"),
		Condition:   c.QueryParam("condition"),
		Query:       c.QueryParam("q"),
	}
	if v := c.QueryParam("category"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if v := c.QueryParam("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &price
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &price
		}
	}

	radius := 0.0
	if v := c.QueryParam("radius"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			radius = r
		}
	}

	var origin *geo.Point
	if principal, ok := middleware.PrincipalFrom(c); ok && radius > 0 {
		user, err := h.userRepository.GetByID(principal.UserID)
		if err == nil && user.Latitude != nil && user.Longitude != nil {
			origin = &geo.Point{Lat: *user.Latitude, Lon: *user.Longitude}
		}
	}

	results, err := h.search.Search(filter, radius, origin)
	if err != nil {
		return httpError(err)
	}

	payload := make([]echo.Map, 0, len(results))
	for _, result := range results {
		entry := echo.Map{
			"id":           result.ID,
			"title":        result.Title,
			"description":  result.Description,
			"price":        result.Price,
			"listing_type": result.ListingType,
			"owner_id":     result.UserID,
			"image_url":    h.primaryImageURL(result.ID),
		}
		if result.Distance != nil {
			entry["distance"] = *result.Distance
		}
		payload = append(payload, entry)
	}
	return c.JSON(http.StatusOK, payload)
}

// ViewListing returns one listing with its images and context, bumping the
// view counter.
func (h *ListingHandler) ViewListing(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}

	if err := h.listingRepository.IncrementViews(listing.ID); err != nil {
		return httpError(err)
	}
	listing.Views++

	images, err := h.listingRepository.ImagesByListing(listing.ID)
	if err != nil {
		return httpError(err)
	}

	inWishlist := false
	if principal, ok := middleware.PrincipalFrom(c); ok {
		if _, err := h.wishlistRepository.FindByUserAndListing(principal.UserID, listing.ID); err == nil {
			inWishlist = true
		}
	}

	similar, err := h.listingRepository.Similar(listing.CategoryID, listing.ID, 4)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"listing":          listing,
		"images":           images,
		"in_wishlist":      inWishlist,
		"similar_listings": similar,
	})
}

// CreateListing accepts multipart form data: listing fields plus any number
// of images, the first of which becomes primary.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.categoryRepository.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Category does not exist")
		}
		return httpError(err)
	}
	if err := validateTypeFields(req); err != nil {
		return err
	}

	listing := &models.Listing{
		Title:       req.Title,
		Description: req.Description,
		Condition:   req.Condition,
		CategoryID:  req.CategoryID,
		ListingType: req.ListingType,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		UserID:      principal.UserID,
		IsActive:    true,
	}
	applyTypeFields(listing, req.ListingType, req.Price, req.ExchangePreferences, req.LoanDuration)

	if err := h.listingRepository.Create(listing); err != nil {
		return httpError(err)
	}

	if form, err := c.MultipartForm(); err == nil {
		for i, file := range form.File["images"] {
			if !storage.Allowed(file.Filename) {
				continue
			}
			stored, err := h.store.Save(file, storage.SubdirListings)
			if err != nil {
				continue
			}
			image := &models.ListingImage{
				Filename:  stored,
				IsPrimary: i == 0,
				ListingID: listing.ID,
			}
			if err := h.listingRepository.AddImage(image); err != nil {
				return httpError(err)
			}
		}
	}

	return c.JSON(http.StatusCreated, listing)
}

// EditListing updates an owned listing. Switching the listing type clears
// the fields belonging to the other types, preserving the one-of invariant.
func (h *ListingHandler) EditListing(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if listing.UserID != principal.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "You don't have permission to edit this listing")
	}

	var req models.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validateTypeFields(req); err != nil {
		return err
	}

	listing.Title = req.Title
	listing.Description = req.Description
	listing.Condition = req.Condition
	listing.CategoryID = req.CategoryID
	listing.ListingType = req.ListingType
	listing.Location = req.Location
	listing.Latitude = req.Latitude
	listing.Longitude = req.Longitude
	applyTypeFields(listing, req.ListingType, req.Price, req.ExchangePreferences, req.LoanDuration)

	if form, formErr := c.MultipartForm(); formErr == nil {
		for _, file := range form.File["new_images"] {
			if !storage.Allowed(file.Filename) {
				continue
			}
			stored, err := h.store.Save(file, storage.SubdirListings)
			if err != nil {
				continue
			}
			image := &models.ListingImage{
				Filename:  stored,
				IsPrimary: false,
				ListingID: listing.ID,
			}
			if err := h.listingRepository.AddImage(image); err != nil {
				return httpError(err)
			}
		}

		for _, raw := range form.Value["delete_image"] {
			imageID, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				continue
			}
			image, err := h.listingRepository.GetImage(uint(imageID))
			if err != nil || image.ListingID != listing.ID {
				continue
			}
			h.store.Remove(storage.SubdirListings, image.Filename)
			if err := h.listingRepository.DeleteImage(image.ID); err != nil {
				return httpError(err)
			}
		}

		if raw := c.FormValue("primary_image"); raw != "" {
			if imageID, err := strconv.ParseUint(raw, 10, 32); err == nil {
				if err := h.listingRepository.SetPrimaryImage(listing.ID, uint(imageID)); err != nil {
					return httpError(err)
				}
			}
		}
	}

	if err := h.listingRepository.Update(listing); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

// DeleteListing removes a listing and unlinks its image files. The owner or
// an admin may delete.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if listing.UserID != principal.UserID && !principal.IsAdmin() {
		return echo.NewHTTPError(http.StatusForbidden, "You don't have permission to delete this listing")
	}

	images, err := h.listingRepository.ImagesByListing(listing.ID)
	if err != nil {
		return httpError(err)
	}
	for _, image := range images {
		h.store.Remove(storage.SubdirListings, image.Filename)
	}

	if err := h.listingRepository.Delete(listing.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *ListingHandler) MyListings(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	listings, err := h.listingRepository.ListByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listings)
}

// validateTypeFields checks that the field matching the listing type was
// supplied. Donation listings carry none of the three.
func validateTypeFields(req models.CreateListingRequest) error {
	switch req.ListingType {
	case models.ListingTypeSale:
		if req.Price == nil || *req.Price <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Sale listings require a price")
		}
	case models.ListingTypeExchange:
		if req.ExchangePreferences == nil || *req.ExchangePreferences == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "Exchange listings require exchange preferences")
		}
	case models.ListingTypeLoan:
		if req.LoanDuration == nil || *req.LoanDuration <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "Loan listings require a loan duration")
		}
	}
	return nil
}

// applyTypeFields sets the one type-specific field matching listingType and
// nils the rest.
func applyTypeFields(listing *models.Listing, listingType string, price *float64, exchangePreferences *string, loanDuration *int) {
	listing.Price = nil
	listing.ExchangePreferences = nil
	listing.LoanDuration = nil

	switch listingType {
	case models.ListingTypeSale:
		listing.Price = price
	case models.ListingTypeExchange:
		listing.ExchangePreferences = exchangePreferences
	case models.ListingTypeLoan:
		listing.LoanDuration = loanDuration
	}
}

func (h *ListingHandler) primaryImageURL(listingID uint) interface{} {
	images, err := h.listingRepository.ImagesByListing(listingID)
	if err != nil || len(images) == 0 {
		return nil
	}
	for _, image := range images {
		if image.IsPrimary {
			return h.store.URL(storage.SubdirListings, image.Filename)
		}
	}
	return h.store.URL(storage.SubdirListings, images[0].Filename)
}
