package session

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "session_token"

// DefaultTTL matches the cookie max age.
const DefaultTTL = 24 * time.Hour

type entry struct {
	userID    int64
	expiresAt time.Time
}

// Manager issues and resolves process-local sessions. The cookie value handed
// to clients is an HS256-signed token whose jti claim is the stored session id,
// so a tampered cookie never reaches the store.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]entry

	now func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Start creates a session for the user and returns the signed cookie token.
func (m *Manager) Start(userID int64) (string, error) {
	sid := uuid.New().String()
	expiresAt := m.now().Add(m.ttl)

	claims := jwt.RegisteredClaims{
		ID:        sid,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(m.now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	m.mu.Lock()
	m.sessions[sid] = entry{userID: userID, expiresAt: expiresAt}
	m.mu.Unlock()

	return token, nil
}

// Resolve maps a cookie token back to a user id. It returns false for missing,
// tampered, or expired sessions; expired entries are dropped from the store.
func (m *Manager) Resolve(token string) (int64, bool) {
	sid, ok := m.sessionID(token)
	if !ok {
		return 0, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sid]
	if !ok {
		return 0, false
	}
	if m.now().After(e.expiresAt) {
		delete(m.sessions, sid)
		return 0, false
	}
	return e.userID, true
}

// Destroy invalidates the session immediately. Unknown or malformed tokens are
// a no-op, which keeps logout idempotent.
func (m *Manager) Destroy(token string) {
	sid, ok := m.sessionID(token)
	if !ok {
		return
	}

	m.mu.Lock()
	delete(m.sessions, sid)
	m.mu.Unlock()
}

func (m *Manager) sessionID(token string) (string, bool) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid || claims.ID == "" {
		return "", false
	}
	return claims.ID, true
}

// NewCookie wraps a session token in the httpOnly same-site cookie handed to
// browsers.
func NewCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ExpiredCookie tells the browser to drop the session cookie.
func ExpiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
