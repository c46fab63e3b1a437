// Package response holds the helpers that shape every HTTP reply.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "roster/internal/domain/errors"
)

// JSON writes a success payload as-is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Error writes the error body shape: an error field and, where applicable, details.
func Error(c echo.Context, statusCode int, message string, details any) error {
	return c.JSON(statusCode, domainerrors.ErrorBody{
		Error:   message,
		Details: details,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string, details any) error {
	return Error(c, http.StatusBadRequest, message, details)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message, nil)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "internal server error", nil)
}
