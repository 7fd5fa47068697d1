package handlers

import (
	"net/http"
	"time"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ReviewHandler covers both review kinds: site feedback entries and peer
// reviews tied to completed trades.
type ReviewHandler struct {
	reviewRepository repositories.ReviewRepository
	reviews          *services.ReviewService
}

func NewReviewHandler(
	reviewRepo repositories.ReviewRepository,
	reviews *services.ReviewService,
) *ReviewHandler {
	return &ReviewHandler{
		reviewRepository: reviewRepo,
		reviews:          reviews,
	}
}

func (h *ReviewHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/reviews/recent", h.RecentReviews)
}

func (h *ReviewHandler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/reviews", h.CreateReview)
	g.POST("/trades/:id/reviews", h.ReviewTrade)
}

func (h *ReviewHandler) RecentReviews(c echo.Context) error {
	reviews, err := h.reviewRepository.Recent(6)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
	}

	review := &models.Review{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Date:    date,
		UserID:  principal.UserID,
	}
	if err := h.reviewRepository.Create(review); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ReviewTrade(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	tradeID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateUserReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.ReviewTrade(principal.UserID, tradeID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, review)
}
