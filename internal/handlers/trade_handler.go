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

// TradeHandler exposes the trade lifecycle. Creation and transitions go
// through TradeService; reads hit the repository directly.
type TradeHandler struct {
	tradeRepository   repositories.TradeRepository
	listingRepository repositories.ListingRepository
	trades            *services.TradeService
}

func NewTradeHandler(
	tradeRepo repositories.TradeRepository,
	listingRepo repositories.ListingRepository,
	trades *services.TradeService,
) *TradeHandler {
	return &TradeHandler{
		tradeRepository:   tradeRepo,
		listingRepository: listingRepo,
		trades:            trades,
	}
}

func (h *TradeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/trades", h.ListTrades)
	g.POST("/listings/:id/trades", h.CreateTrade)
	g.GET("/trades/:id", h.ViewTrade)
	g.POST("/trades/:id/status", h.UpdateStatus)
}

// ListTrades returns the caller's trades split into initiated and received.
func (h *TradeHandler) ListTrades(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	initiated, err := h.tradeRepository.ListByInitiator(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	received, err := h.tradeRepository.ListByReceiver(principal.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"initiated": initiated,
		"received":  received,
	})
}

func (h *TradeHandler) CreateTrade(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	listingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateTradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade, err := h.trades.Create(principal.UserID, listingID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, trade)
}

// ViewTrade is visible to the two parties only.
func (h *TradeHandler) ViewTrade(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	trade, err := h.tradeRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if trade.InitiatorID != principal.UserID && trade.ReceiverID != principal.UserID {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	listing, err := h.listingRepository.GetByID(trade.ListingID)
	if err != nil {
		return httpError(err)
	}

	payload := echo.Map{
		"trade":   trade,
		"listing": listing,
	}
	if trade.OfferedListingID != nil {
		if offered, err := h.listingRepository.GetByID(*trade.OfferedListingID); err == nil {
			payload["offered_listing"] = offered
		}
	}
	return c.JSON(http.StatusOK, payload)
}

func (h *TradeHandler) UpdateStatus(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateTradeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade, err := h.trades.UpdateStatus(principal.UserID, id, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, trade)
}
