package rest

import (
	"errors"
	"net/http"
	"time"

	"agamOrganics/domain"
	"agamOrganics/internal/middleware"
	"agamOrganics/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultTimeout = 10 * time.Second

// CheckoutTimeout bounds an order placement, including every insert retry.
const CheckoutTimeout = 30 * time.Second

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// MessageResponse is the body of mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}

// statusFor maps an error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest), errors.Is(err, domain.ErrPaymentVerification):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c echo.Context, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(code, ResponseError{Message: err.Error()})
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
}

// uuidParam reads a path parameter that must be a UUID.
func uuidParam(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if err := uuid.Validate(raw); err != nil {
		return "", domain.Errorf(domain.ErrBadRequest, "invalid %s", name)
	}
	return raw, nil
}

func currentUserID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserID).(string)
	return id
}

func currentEmail(c echo.Context) string {
	email, _ := c.Get(middleware.ContextEmail).(string)
	return email
}

func currentToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextToken).(string)
	return token
}
