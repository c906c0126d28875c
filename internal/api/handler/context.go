package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spellnotes/notes-api/internal/api/middleware"
	"github.com/spellnotes/notes-api/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware.
// Its presence proves the middleware ran; a handler reached without it is a
// wiring bug and is rejected with 401 rather than served unscoped.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return user, nil
}
