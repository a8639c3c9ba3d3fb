package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkstash/bookmarks-api/internal/api/middleware"
	"github.com/linkstash/bookmarks-api/internal/core/domain"
)

// ctxUser extracts the account injected by the Auth middleware and
// performs a fast-fail check before any service call: its presence
// proves the middleware ran. The returned user never carries a password
// hash; the middleware strips it.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
