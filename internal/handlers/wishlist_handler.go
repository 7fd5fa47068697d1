package handlers

import (
	"net/http"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistRepository repositories.WishlistRepository
	listingRepository  repositories.ListingRepository
}

func NewWishlistHandler(
	wishlistRepo repositories.WishlistRepository,
	listingRepo repositories.ListingRepository,
) *WishlistHandler {
	return &WishlistHandler{
		wishlistRepository: wishlistRepo,
		listingRepository:  listingRepo,
	}
}

func (h *WishlistHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/wishlist", h.ViewWishlist)
	g.POST("/wishlist/toggle", h.Toggle)
}

func (h *WishlistHandler) ViewWishlist(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	items, err := h.wishlistRepository.ItemsByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}

	entries := make([]echo.Map, 0, len(items))
	for _, item := range items {
		listing, err := h.listingRepository.GetByID(item.ListingID)
		if err != nil {
			continue
		}
		entries = append(entries, echo.Map{
			"id":       item.ID,
			"listing":  listing,
			"added_at": item.AddedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": entries})
}

// Toggle adds the listing to the wishlist if absent, removes it if present.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.ListingIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.listingRepository.GetByID(req.ListingID); err != nil {
		return httpError(err)
	}

	if existing, err := h.wishlistRepository.FindByUserAndListing(principal.UserID, req.ListingID); err == nil {
		if err := h.wishlistRepository.Delete(existing.ID); err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success":     true,
			"in_wishlist": false,
			"message":     "Removed from wishlist",
		})
	}

	item := &models.WishlistItem{
		UserID:    principal.UserID,
		ListingID: req.ListingID,
	}
	if err := h.wishlistRepository.Add(item); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"in_wishlist": true,
		"message":     "Added to wishlist",
	})
}
