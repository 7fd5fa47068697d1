package handlers

import (
	"net/http"
	"strconv"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler serves profiles, profile editing, user search and the
// signed-in dashboard.
type UserHandler struct {
	userRepository         repositories.UserRepository
	userReviewRepository   repositories.UserReviewRepository
	listingRepository      repositories.ListingRepository
	installmentRepository  repositories.InstallmentRepository
	donationRepository     repositories.DonationRepository
	tradeRepository        repositories.TradeRepository
	notificationRepository repositories.NotificationRepository
	cartRepository         repositories.CartRepository
	wishlistRepository     repositories.WishlistRepository
	chatRepository         repositories.ChatRepository
	store                  *storage.Store
}

func NewUserHandler(
	userRepo repositories.UserRepository,
	userReviewRepo repositories.UserReviewRepository,
	listingRepo repositories.ListingRepository,
	installmentRepo repositories.InstallmentRepository,
	donationRepo repositories.DonationRepository,
	tradeRepo repositories.TradeRepository,
	notificationRepo repositories.NotificationRepository,
	cartRepo repositories.CartRepository,
	wishlistRepo repositories.WishlistRepository,
	chatRepo repositories.ChatRepository,
	store *storage.Store,
) *UserHandler {
	return &UserHandler{
		userRepository:         userRepo,
		userReviewRepository:   userReviewRepo,
		listingRepository:      listingRepo,
		installmentRepository:  installmentRepo,
		donationRepository:     donationRepo,
		tradeRepository:        tradeRepo,
		notificationRepository: notificationRepo,
		cartRepository:         cartRepo,
		wishlistRepository:     wishlistRepo,
		chatRepository:         chatRepo,
		store:                  store,
	}
}

func (h *UserHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/users/:id", h.Profile)
	g.GET("/users/:id/reviews", h.UserReviews)
}

func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.PUT("/me/profile", h.EditProfile)
	g.GET("/me/dashboard", h.Dashboard)
}

// Profile is the public profile page data: the user, their received
// reviews with the average rating, and their latest active listings.
func (h *UserHandler) Profile(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}

	reviews, err := h.userReviewRepository.ListForUser(user.ID)
	if err != nil {
		return httpError(err)
	}
	avgRating, err := h.userReviewRepository.AverageRating(user.ID)
	if err != nil {
		return httpError(err)
	}

	listings, err := h.listingRepository.ListActiveByUser(user.ID)
	if err != nil {
		return httpError(err)
	}
	if len(listings) > 4 {
		listings = listings[:4]
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":            user,
		"reviews":         reviews,
		"avg_rating":      avgRating,
		"active_listings": listings,
	})
}

func (h *UserHandler) UserReviews(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}

	reviews, err := h.userReviewRepository.ListForUser(user.ID)
	if err != nil {
		return httpError(err)
	}
	avgRating, err := h.userReviewRepository.AverageRating(user.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       user,
		"reviews":    reviews,
		"avg_rating": avgRating,
	})
}

// SearchUsers matches first or last name substrings, excluding the caller.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	query := c.QueryParam("q")

	users, err := h.userRepository.Search(query, principal.UserID)
	if err != nil {
		return httpError(err)
	}

	results := make([]echo.Map, 0, len(users))
	for _, user := range users {
		entry := echo.Map{
			"id":       user.ID,
			"name":     user.FullName(),
			"isOnline": user.IsOnline,
		}
		if user.LastSeen != nil {
			entry["lastSeen"] = user.LastSeen.Format("2006-01-02T15:04:05Z07:00")
		} else {
			entry["lastSeen"] = nil
		}
		results = append(results, entry)
	}
	return c.JSON(http.StatusOK, results)
}

// EditProfile updates the caller's profile. A password change requires the
// current password; a replaced profile image is removed best-effort.
func (h *UserHandler) EditProfile(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	user, err := h.userRepository.GetByID(principal.UserID)
	if err != nil {
		return httpError(err)
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	user.Mobile = req.Mobile
	user.Gender = req.Gender
	user.Address = req.Address
	user.City = req.City
	user.State = req.State
	user.ZipCode = req.ZipCode
	if req.Country != "" {
		user.Country = req.Country
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = req.Longitude
	}

	if req.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Current password is incorrect")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return httpError(err)
		}
		user.Password = string(hash)
	}

	if file, err := c.FormFile("profile_image"); err == nil {
		stored, err := h.store.Save(file, storage.SubdirProfiles)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if user.ProfileImage != "" {
			h.store.Remove(storage.SubdirProfiles, user.ProfileImage)
		}
		user.ProfileImage = stored
	}

	if err := h.userRepository.Update(user); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Dashboard aggregates the caller's recent activity and badge counts.
func (h *UserHandler) Dashboard(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)
	userID := principal.UserID

	user, err := h.userRepository.GetByID(userID)
	if err != nil {
		return httpError(err)
	}

	installments, err := h.installmentRepository.ListByUser(userID, 3)
	if err != nil {
		return httpError(err)
	}
	donationsMade, err := h.donationRepository.ListByDonor(userID, 3)
	if err != nil {
		return httpError(err)
	}
	donationsReceived, err := h.donationRepository.ListByRecipient(userID, 3)
	if err != nil {
		return httpError(err)
	}
	recentListings, err := h.listingRepository.ListByUser(userID)
	if err != nil {
		return httpError(err)
	}
	if len(recentListings) > 3 {
		recentListings = recentListings[:3]
	}
	recentTrades, err := h.tradeRepository.ListInvolving(userID, 3)
	if err != nil {
		return httpError(err)
	}
	unread, err := h.notificationRepository.UnreadCount(userID)
	if err != nil {
		return httpError(err)
	}
	wishlistCount, err := h.wishlistRepository.CountByUser(userID)
	if err != nil {
		return httpError(err)
	}
	cartCount, err := h.cartRepository.CountByUser(userID)
	if err != nil {
		return httpError(err)
	}
	chatPartnerIDs, err := h.chatRepository.RecentPartnerIDs(userID, 3)
	if err != nil {
		return httpError(err)
	}
	recentChats := make([]models.User, 0, len(chatPartnerIDs))
	for _, partnerID := range chatPartnerIDs {
		partner, err := h.userRepository.GetByID(partnerID)
		if err != nil {
			continue // orphaned messages keep their sender id after account deletion
		}
		recentChats = append(recentChats, *partner)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":                 user,
		"installments":         installments,
		"donations_made":       donationsMade,
		"donations_received":   donationsReceived,
		"recent_chats":         recentChats,
		"recent_listings":      recentListings,
		"recent_trades":        recentTrades,
		"unread_notifications": unread,
		"wishlist_count":       wishlistCount,
		"cart_count":           cartCount,
	})
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}
