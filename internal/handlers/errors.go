package handlers

import (
	"errors"
	"net/http"

	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// httpError maps service and storage errors onto the API's response
// taxonomy: validation and conflicts → 400, authorization → 403, missing
// entities → 404.
func httpError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var validationError *services.ValidationError
	var conflictError *services.ConflictError
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Unauthorized")
	case errors.As(err, &validationError):
		return echo.NewHTTPError(http.StatusBadRequest, validationError.Reason)
	case errors.As(err, &conflictError):
		return echo.NewHTTPError(http.StatusBadRequest, conflictError.Reason)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
