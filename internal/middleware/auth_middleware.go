package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"time"

	"agamOrganics/pkg/logger"
	jsonres "agamOrganics/pkg/response"
	"agamOrganics/pkg/utils"

	"github.com/labstack/echo/v4"
)

// Context keys set for authenticated requests.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextToken  = "token"
)

type TokenParser interface {
	Parse(token string) (*utils.Claims, error)
}

// TokenValidator checks that a token is still registered in the token store.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// AuthMiddleware accepts bearer tokens of the given types, access tokens when none are given.
func AuthMiddleware(parser TokenParser, tokenTypes ...string) echo.MiddlewareFunc {
	return AuthMiddlewareWithRedis(parser, nil, tokenTypes...)
}

// AuthMiddlewareWithRedis additionally requires the token to be present in the registry.
// A nil validator skips the registry check.
func AuthMiddlewareWithRedis(parser TokenParser, tokenValidator TokenValidator, tokenTypes ...string) echo.MiddlewareFunc {
	if len(tokenTypes) == 0 {
		tokenTypes = []string{utils.TokenTypeAccess}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing authorization header", nil,
				))
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid authorization format", nil,
				))
			}

			claims, err := parser.Parse(tokenString)
			if err != nil {
				logger.Warn("Rejected token", "error", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Could not validate credentials", nil,
				))
			}

			if !slices.Contains(tokenTypes, claims.Type) {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token type", nil,
				))
			}

			if tokenValidator != nil {
				ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
				defer cancel()

				userID, err := tokenValidator.ValidateToken(ctx, tokenString)
				if err != nil {
					logger.Warn("Token not found in registry", "error", err)
					return c.JSON(http.StatusUnauthorized, jsonres.Error(
						"UNAUTHORIZED", "Token expired or revoked", nil,
					))
				}

				if userID != claims.UserID() {
					logger.Error("User ID mismatch between token and registry", "user_id", claims.UserID())
					return c.JSON(http.StatusUnauthorized, jsonres.Error(
						"UNAUTHORIZED", "Could not validate credentials", nil,
					))
				}
			}

			c.Set(ContextUserID, claims.UserID())
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextToken, tokenString)

			return next(c)
		}
	}
}
