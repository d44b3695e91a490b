package response

import (
	"errors"
	"net/http"
	"strings"

	apperrors "dressly/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ErrorBody struct {
	Message string `json:"message"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageBody{Message: message})
}

func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, ErrorBody{Message: appErr.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Message: "An unexpected error occurred",
	})
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := strings.ToLower(err.Field())

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + err.Param()
		case "email":
			message = field + " must be a valid email address"
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{Message: message})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{Message: "Invalid input data"})
}
