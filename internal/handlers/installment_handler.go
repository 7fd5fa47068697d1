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

// InstallmentHandler covers the user side of installment financing:
// applying and tracking own applications. Review lives on the admin surface.
type InstallmentHandler struct {
	installmentRepository repositories.InstallmentRepository
	installments          *services.InstallmentService
}

func NewInstallmentHandler(
	installmentRepo repositories.InstallmentRepository,
	installments *services.InstallmentService,
) *InstallmentHandler {
	return &InstallmentHandler{
		installmentRepository: installmentRepo,
		installments:          installments,
	}
}

func (h *InstallmentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/installments", h.MyApplications)
	g.POST("/installments", h.Apply)
}

func (h *InstallmentHandler) MyApplications(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	installments, err := h.installmentRepository.ListByUser(principal.UserID, 0)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, installments)
}

func (h *InstallmentHandler) Apply(c echo.Context) error {
	principal := middleware.CurrentPrincipal(c)

	var req models.ApplyInstallmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	installment, err := h.installments.Apply(principal.UserID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, installment)
}
