package handlers

import (
	"net/http"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CartHandler manages the shopping cart and checkout. Only active sale
// listings can be carted; ordering goes through CheckoutService so the whole
// cart commits or nothing does.
type CartHandler struct {
	cartRepository    repositories.CartRepository
	listingRepository repositories.ListingRepository
	checkout          *services.CheckoutService
}

func NewCartHandler(
	cartRepo repositories.CartRepository,
	listingRepo repositories.ListingRepository,
	checkout *services.CheckoutService,
) *CartHandler {
	return &CartHandler{
		cartRepository:    cartRepo,
		listingRepository: listingRepo,
		checkout:          checkout,
	}
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.ViewCart)
	g.POST("/cart/add", h.AddToCart)
	g.DELETE("/cart/remove/:id", h.RemoveFromCart)
	g.GET("/checkout", h.CheckoutSummary)
	g.POST("/place_order", h.PlaceOrder)
}

func (h *CartHandler) ViewCart(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	items, err := h.cartRepository.ItemsByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}

	entries, total, err := h.cartEntries(items)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": entries,
		"total": total,
	})
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.ListingIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.listingRepository.GetByID(req.ListingID)
	if err != nil {
		return httpError(err)
	}
	if !listing.IsActive {
		return echo.NewHTTPError(http.StatusBadRequest, "This listing is no longer available")
	}
	if listing.ListingType != models.ListingTypeSale {
		return echo.NewHTTPError(http.StatusBadRequest, "Only sale listings can be added to the cart")
	}
	if listing.UserID == principal.UserID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot add your own listing to the cart")
	}
	if _, err := h.cartRepository.FindByUserAndListing(principal.UserID, listing.ID); err == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "This item is already in your cart")
	}

	item := &models.CartItem{
		UserID:    principal.UserID,
		ListingID: listing.ID,
		Quantity:  1,
	}
	if err := h.cartRepository.Add(item); err != nil {
		return httpError(err)
	}

	count, err := h.cartRepository.CountByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Item added to cart",
		"cart_count": count,
	})
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.cartRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if item.UserID != principal.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	if err := h.cartRepository.Delete(item.ID); err != nil {
		return httpError(err)
	}

	count, err := h.cartRepository.CountByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    "Item removed from cart",
		"cart_count": count,
	})
}

// CheckoutSummary returns the cart contents priced for review before the
// order is placed.
func (h *CartHandler) CheckoutSummary(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	items, err := h.cartRepository.ItemsByUser(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	if len(items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Your cart is empty")
	}

	entries, total, err := h.cartEntries(items)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": entries,
		"total": total,
	})
}

func (h *CartHandler) PlaceOrder(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	ordered, err := h.checkout.PlaceOrder(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"message":     "Order placed successfully",
		"order_count": ordered,
	})
}

func (h *CartHandler) cartEntries(items []models.CartItem) ([]echo.Map, float64, error) {
	entries := make([]echo.Map, 0, len(items))
	total := 0.0
	for _, item := range items {
		listing, err := h.listingRepository.GetByID(item.ListingID)
		if err != nil {
			// Listing rows can vanish between carting and viewing.
			continue
		}
		entry := echo.Map{
			"id":       item.ID,
			"listing":  listing,
			"added_at": item.AddedAt,
		}
		if listing.Price != nil {
			total += *listing.Price
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}
