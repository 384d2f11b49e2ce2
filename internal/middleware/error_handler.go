package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"agamOrganics/pkg/logger"
	jsonres "agamOrganics/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers (unknown routes, bad methods, panics
// recovered upstream) in the same shape as handler errors.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
		if he.Internal != nil {
			logger.Debug("HTTP error", "status", code, "internal", he.Internal)
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
	}
	if err != nil {
		logger.Error("Failed to write error response", "error", err)
	}
}
