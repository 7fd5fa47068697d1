package handlers

import (
	"net/http"

	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type DonationHandler struct {
	donationRepository repositories.DonationRepository
	donations          *services.DonationService
	store              *storage.Store
}

func NewDonationHandler(
	donationRepo repositories.DonationRepository,
	donations *services.DonationService,
	store *storage.Store,
) *DonationHandler {
	return &DonationHandler{
		donationRepository: donationRepo,
		donations:          donations,
		store:              store,
	}
}

func (h *DonationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/donations", h.ListDonations)
	g.POST("/donations", h.CreateDonation)
	g.GET("/donations/:id", h.ViewDonation)
	g.POST("/donations/:id/status", h.UpdateStatus)
}

// ListDonations splits the caller's donations into made and received; admins
// additionally see the organization pool.
func (h *DonationHandler) ListDonations(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	made, err := h.donationRepository.ListByDonor(principal.UserID, 0)
	if err != nil {
		return httpError(err)
	}
	received, err := h.donationRepository.ListByRecipient(principal.UserID, 0)
	if err != nil {
		return httpError(err)
	}

	payload := echo.Map{
		"made":     made,
		"received": received,
	}
	if principal.IsAdmin() {
		pool, err := h.donationRepository.ListAdminPool()
		if err != nil {
			return httpError(err)
		}
		payload["organization"] = pool
	}
	return c.JSON(http.StatusOK, payload)
}

// CreateDonation accepts multipart form data with an optional image.
func (h *DonationHandler) CreateDonation(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.CreateDonationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imageFilename := ""
	if file, err := c.FormFile("image"); err == nil && storage.Allowed(file.Filename) {
		stored, err := h.store.Save(file, storage.SubdirListings)
		if err == nil {
			imageFilename = stored
		}
	}

	donation, err := h.donations.Create(principal.UserID, req, imageFilename)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, donation)
}

func (h *DonationHandler) ViewDonation(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	donation, err := h.donationRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	if !services.CanViewDonation(donation, principal.UserID, principal.Role) {
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	}

	payload := echo.Map{"donation": donation}
	if donation.ImageFilename != "" {
		payload["image_url"] = h.store.URL(storage.SubdirListings, donation.ImageFilename)
	}
	return c.JSON(http.StatusOK, payload)
}

func (h *DonationHandler) UpdateStatus(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateDonationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	donation, err := h.donations.UpdateStatus(principal.UserID, principal.Role, id, req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, donation)
}
