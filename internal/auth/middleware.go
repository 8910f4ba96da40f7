package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const usernameContextKey = "username"

// Gate validates the token cookie on every request. A missing cookie lets
// the request through as anonymous; RequireUser rejects it downstream on
// protected routes. A present but invalid token terminates the request
// before any business logic runs.
func Gate(manager *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil {
				return next(c)
			}

			username, err := manager.Validate(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token received")
			}

			c.Set(usernameContextKey, username)
			return next(c)
		}
	}
}

// RequireUser rejects anonymous requests.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUsername(c) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			return next(c)
		}
	}
}

// CurrentUsername returns the authenticated subject, or "" for anonymous
// requests.
func CurrentUsername(c echo.Context) string {
	if username, ok := c.Get(usernameContextKey).(string); ok {
		return username
	}
	return ""
}
