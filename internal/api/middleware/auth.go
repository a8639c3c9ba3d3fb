package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/linkstash/bookmarks-api/internal/api/metrics"
	"github.com/linkstash/bookmarks-api/internal/core/domain"
	"github.com/linkstash/bookmarks-api/internal/core/ports"
	"github.com/linkstash/bookmarks-api/internal/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "user_id"
)

// Auth validates the bearer token, resolves it to a stored account, and
// injects the account (password hash stripped) into the request context.
// Everything short of that is a 401; the middleware never mutates state.
func Auth(tokens *token.Service, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// A token can outlive its account; a structurally valid token
			// for a deleted account is still unauthenticated.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthRejectionsTotal.WithLabelValues("unknown_account").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
				return err
			}

			resolved := *user
			resolved.PasswordHash = ""

			c.Set(ContextKeyUser, &resolved)
			c.Set(ContextKeyUserID, resolved.ID)

			return next(c)
		}
	}
}
