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

// AdminHandler is the moderation surface: platform stats, user management,
// site review moderation, installment review, and the full trade ledger.
// Every route sits behind the admin gate.
type AdminHandler struct {
	userRepository        repositories.UserRepository
	listingRepository     repositories.ListingRepository
	tradeRepository       repositories.TradeRepository
	donationRepository    repositories.DonationRepository
	installmentRepository repositories.InstallmentRepository
	reviewRepository      repositories.ReviewRepository
	installments          *services.InstallmentService
}

func NewAdminHandler(
	userRepo repositories.UserRepository,
	listingRepo repositories.ListingRepository,
	tradeRepo repositories.TradeRepository,
	donationRepo repositories.DonationRepository,
	installmentRepo repositories.InstallmentRepository,
	reviewRepo repositories.ReviewRepository,
	installments *services.InstallmentService,
) *AdminHandler {
	return &AdminHandler{
		userRepository:        userRepo,
		listingRepository:     listingRepo,
		tradeRepository:       tradeRepo,
		donationRepository:    donationRepo,
		installmentRepository: installmentRepo,
		reviewRepository:      reviewRepo,
		installments:          installments,
	}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Dashboard)
	g.GET("/users", h.ListUsers)
	g.DELETE("/users/:id", h.DeleteUser)
	g.GET("/reviews", h.ListReviews)
	g.DELETE("/reviews/:id", h.DeleteReview)
	g.GET("/installments", h.ListInstallments)
	g.GET("/installments/:id", h.ViewInstallment)
	g.POST("/installments/:id/status", h.UpdateInstallmentStatus)
	g.GET("/trades", h.ListTrades)
}

// Dashboard aggregates the numbers the admin landing screen shows.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	userCount, err := h.userRepository.CountByRole(models.RoleUser)
	if err != nil {
		return httpError(err)
	}
	listingCount, err := h.listingRepository.Count()
	if err != nil {
		return httpError(err)
	}
	pendingTrades, err := h.tradeRepository.CountByStatus(models.TradeStatusPending)
	if err != nil {
		return httpError(err)
	}
	completedTrades, err := h.tradeRepository.CountByStatus(models.TradeStatusCompleted)
	if err != nil {
		return httpError(err)
	}
	purchases, err := h.tradeRepository.CountByType(models.TradeTypePurchase)
	if err != nil {
		return httpError(err)
	}
	pendingDonations, err := h.donationRepository.CountByStatus(models.DonationStatusPending)
	if err != nil {
		return httpError(err)
	}
	pendingInstallments, err := h.installmentRepository.CountByStatus(models.InstallmentStatusPending)
	if err != nil {
		return httpError(err)
	}
	recentOrders, err := h.tradeRepository.RecentByType(models.TradeTypePurchase, 5)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user_count":           userCount,
		"listing_count":        listingCount,
		"pending_trades":       pendingTrades,
		"completed_trades":     completedTrades,
		"purchase_count":       purchases,
		"pending_donations":    pendingDonations,
		"pending_installments": pendingInstallments,
		"recent_orders":        recentOrders,
	})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	var (
		users []models.User
		err   error
	)
	if query := c.QueryParam("q"); query != "" {
		users, err = h.userRepository.Search(query, 0)
	} else {
		users, err = h.userRepository.List()
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes an account with everything it owns. Admins cannot
// delete themselves.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if id == principal.UserID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot delete your own account")
	}

	if _, err := h.userRepository.GetByID(id); err != nil {
		return httpError(err)
	}
	if err := h.userRepository.Delete(id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AdminHandler) ListReviews(c echo.Context) error {
	query := c.QueryParam("q")
	var (
		reviews []models.Review
		err     error
	)
	if query != "" {
		reviews, err = h.reviewRepository.Search(query)
	} else {
		reviews, err = h.reviewRepository.List()
	}
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *AdminHandler) DeleteReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.reviewRepository.GetByID(id); err != nil {
		return httpError(err)
	}
	if err := h.reviewRepository.Delete(id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *AdminHandler) ListInstallments(c echo.Context) error {
	filter := models.InstallmentFilter{
		Query:  c.QueryParam("q"),
		Status: c.QueryParam("status"),
	}
	installments, err := h.installmentRepository.ListFiltered(filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, installments)
}

func (h *AdminHandler) ViewInstallment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	installment, err := h.installmentRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}

	applicant, err := h.userRepository.GetByID(installment.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"installment": installment,
		"applicant":   applicant,
	})
}

func (h *AdminHandler) UpdateInstallmentStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateInstallmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	installment, err := h.installments.UpdateStatus(id, req.Status, req.AdminNotes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, installment)
}

func (h *AdminHandler) ListTrades(c echo.Context) error {
	filter := models.TradeFilter{
		TradeType: c.QueryParam("type"),
		Status:    c.QueryParam("status"),
		Query:     c.QueryParam("q"),
	}
	trades, err := h.tradeRepository.ListFiltered(filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, trades)
}
