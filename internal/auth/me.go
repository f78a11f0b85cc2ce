package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obi-dev/authhub/internal/middleware"
	"github.com/obi-dev/authhub/internal/session"
	"github.com/obi-dev/authhub/internal/user"
)

// Me returns the authenticated user's profile. If the session points at a user
// that no longer exists, the session is destroyed and the request rejected.
func (h *Handler) Me(c echo.Context) error {
	userID, ok := c.Get(middleware.ContextUserID).(int64)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	u, err := h.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			if token, ok := c.Get(middleware.ContextSessionToken).(string); ok {
				h.sessions.Destroy(token)
			}
			c.SetCookie(session.ExpiredCookie())
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "user no longer exists"})
		}
		h.log.WithError(err).Error("failed to load user")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	return c.JSON(http.StatusOK, u)
}
