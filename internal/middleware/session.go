package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obi-dev/authhub/internal/session"
)

// Context keys set by RequireSession for downstream handlers.
const (
	ContextUserID       = "user_id"
	ContextSessionToken = "session_token"
)

// RequireSession guards API routes behind a valid session cookie. The resolved
// user id and the raw token are stored in the request context.
func RequireSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			userID, ok := sessions.Resolve(cookie.Value)
			if !ok {
				c.SetCookie(session.ExpiredCookie())
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextSessionToken, cookie.Value)
			return next(c)
		}
	}
}
