package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/obi-dev/authhub/internal/session"
	"github.com/obi-dev/authhub/internal/user"
)

// Handler serves the authentication endpoints.
type Handler struct {
	users    user.Repository
	sessions *session.Manager
	log      *logrus.Logger
}

func NewHandler(users user.Repository, sessions *session.Manager, log *logrus.Logger) *Handler {
	return &Handler{users: users, sessions: sessions, log: log}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	// Age arrives as either a JSON number or a numeric string.
	Age   json.Number `json:"age"`
	Phone string      `json:"phone"`
	Sex   string      `json:"sex"`
}

// Signup creates a user and starts a session for it.
func (h *Handler) Signup(c echo.Context) error {
	req := new(SignupRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if req.Email == "" || req.Name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, name and password are required"})
	}

	u := &user.User{
		Email:    req.Email,
		Name:     req.Name,
		Nickname: optional(req.Nickname),
		Phone:    optional(req.Phone),
		Sex:      optional(req.Sex),
	}

	if req.Age != "" {
		age, err := strconv.Atoi(req.Age.String())
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "age must be a number"})
		}
		u.Age = &age
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.log.WithError(err).Error("failed to hash password")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}
	u.Password = string(hashed)

	if _, err := h.users.Create(c.Request().Context(), u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		h.log.WithError(err).Error("failed to create user")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	return h.startSession(c, u.ID)
}

// startSession issues a session for the user, sets the cookie and replies with
// the shared success body.
func (h *Handler) startSession(c echo.Context, userID int64) error {
	token, err := h.sessions.Start(userID)
	if err != nil {
		h.log.WithError(err).Error("failed to start session")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server error"})
	}

	c.SetCookie(session.NewCookie(token, session.DefaultTTL))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
