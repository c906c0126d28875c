package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/spellnotes/notes-api/internal/api/metrics"
	"github.com/spellnotes/notes-api/internal/core/ports"
)

// UserContextKey is the echo context key under which the authenticated user
// is stored for downstream handlers.
const UserContextKey = "auth_user"

// Auth extracts the bearer token from the Authorization header and resolves
// it to a user via the auth service. Every failure — missing header, bad
// scheme, invalid or expired token, unknown subject — yields the same 401 so
// callers cannot probe which check rejected them.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c)
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return unauthorized(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set("WWW-Authenticate", "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}
