package handlers

import (
	"net/http"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the public category tree; writes are admin-only and
// go through CategoryService so reparenting stays acyclic.
type CategoryHandler struct {
	categoryRepository repositories.CategoryRepository
	categories         *services.CategoryService
}

func NewCategoryHandler(
	categoryRepo repositories.CategoryRepository,
	categories *services.CategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryRepository: categoryRepo,
		categories:         categories,
	}
}

func (h *CategoryHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/categories", h.ListCategories)
	g.GET("/categories/:id", h.ViewCategory)
}

func (h *CategoryHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/categories", h.CreateCategory)
	g.PUT("/categories/:id", h.UpdateCategory)
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryRepository.List()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// ViewCategory returns a category with its children and ancestor chain.
func (h *CategoryHandler) ViewCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.categoryRepository.GetByID(id)
	if err != nil {
		return httpError(err)
	}
	children, err := h.categoryRepository.Children(category.ID)
	if err != nil {
		return httpError(err)
	}
	ancestors, err := h.categories.Ancestors(category.ID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"category":  category,
		"children":  children,
		"ancestors": ancestors,
	})
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.Create(req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.Update(id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, category)
}
