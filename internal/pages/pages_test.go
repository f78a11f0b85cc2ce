package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/obi-dev/authhub/internal/session"
)

func newPageApp(t *testing.T) (*echo.Echo, *session.Manager) {
	t.Helper()

	sessions := session.NewManager("test-secret", time.Hour)
	h := NewHandler(sessions)

	e := echo.New()
	e.GET("/", h.Home)
	e.GET("/signup", h.Signup)
	e.GET("/main", h.Main)

	return e, sessions
}

func get(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func authCookie(t *testing.T, sessions *session.Manager) *http.Cookie {
	t.Helper()
	token, err := sessions.Start(1)
	require.NoError(t, err)
	return session.NewCookie(token, time.Hour)
}

func TestHomeServesLoginPage(t *testing.T) {
	e, _ := newPageApp(t)

	rec := get(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Login")
}

func TestHomeRedirectsAuthenticatedVisitor(t *testing.T) {
	e, sessions := newPageApp(t)

	rec := get(e, "/", authCookie(t, sessions))
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/main", rec.Header().Get(echo.HeaderLocation))
}

func TestSignupPage(t *testing.T) {
	e, _ := newPageApp(t)

	rec := get(e, "/signup")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sign up")
}

func TestMainRedirectsAnonymousVisitor(t *testing.T) {
	e, _ := newPageApp(t)

	rec := get(e, "/main")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestMainServesAuthenticatedVisitor(t *testing.T) {
	e, sessions := newPageApp(t)

	rec := get(e, "/main", authCookie(t, sessions))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Welcome")
}
