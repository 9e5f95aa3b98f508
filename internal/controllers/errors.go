package controllers

import (
	"errors"
	"net/http"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// detail is the error body shape every non-2xx response uses.
func detail(msg string) map[string]string {
	return map[string]string{"detail": msg}
}

// respondError maps service errors onto the HTTP taxonomy: invalid input to
// 400, missing data to 404, validation-tag failures to 422, anything else
// to 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, detail(err.Error()))
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, detail(err.Error()))
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusUnprocessableEntity, detail(err.Error()))
	}

	return c.JSON(http.StatusInternalServerError, detail(err.Error()))
}
