package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obi-dev/authhub/internal/session"
)

// Logout destroys the session if one is present. Always succeeds so repeated
// logouts are harmless.
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie.Value != "" {
		h.sessions.Destroy(cookie.Value)
	}

	c.SetCookie(session.ExpiredCookie())
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
