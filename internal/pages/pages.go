package pages

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/obi-dev/authhub/internal/session"
)

var (
	//go:embed templates/login.html
	loginHTML string
	//go:embed templates/signup.html
	signupHTML string
	//go:embed templates/main.html
	mainHTML string
)

// Handler serves the static entry pages and handles the auth-state redirects
// between them.
type Handler struct {
	sessions *session.Manager
}

func NewHandler(sessions *session.Manager) *Handler {
	return &Handler{sessions: sessions}
}

// Home serves the login page, or sends authenticated visitors to /main.
func (h *Handler) Home(c echo.Context) error {
	if h.authenticated(c) {
		return c.Redirect(http.StatusFound, "/main")
	}
	return c.HTML(http.StatusOK, loginHTML)
}

// Signup serves the signup page.
func (h *Handler) Signup(c echo.Context) error {
	return c.HTML(http.StatusOK, signupHTML)
}

// Main serves the main page, or sends anonymous visitors back to the login page.
func (h *Handler) Main(c echo.Context) error {
	if !h.authenticated(c) {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.HTML(http.StatusOK, mainHTML)
}

func (h *Handler) authenticated(c echo.Context) bool {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}
	_, ok := h.sessions.Resolve(cookie.Value)
	return ok
}
