package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/obi-dev/authhub/internal/auth"
	"github.com/obi-dev/authhub/internal/config"
	"github.com/obi-dev/authhub/internal/db"
	appmw "github.com/obi-dev/authhub/internal/middleware"
	"github.com/obi-dev/authhub/internal/pages"
	"github.com/obi-dev/authhub/internal/ratelimit"
	"github.com/obi-dev/authhub/internal/session"
	"github.com/obi-dev/authhub/internal/user"
)

// Limits for the auth routes: 20 requests per client IP per 15-minute window.
const (
	authRateLimit  = 20
	authRateWindow = 15 * time.Minute
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatalf("Failed to ensure schema: %v", err)
	}

	users := user.NewPostgresRepository(pool)
	sessions := session.NewManager(cfg.SessionSecret, session.DefaultTTL)
	authHandler := auth.NewHandler(users, sessions, logger)
	pageHandler := pages.NewHandler(sessions)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Health
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/ready", func(c echo.Context) error {
		if err := pool.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db unreachable"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
	})

	// Pages
	e.GET("/", pageHandler.Home)
	e.GET("/signup", pageHandler.Signup)
	e.GET("/main", pageHandler.Main)

	// Auth routes with per-IP rate limiting to protect signup/login from abuse
	authLimiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: ratelimit.NewFixedWindowStore(authRateLimit, authRateWindow),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "too many attempts, please try again later"})
		},
	})
	e.POST("/signup", authHandler.Signup, authLimiter)
	e.POST("/login", authHandler.Login, authLimiter)
	e.POST("/logout", authHandler.Logout)

	// Protected API
	e.GET("/api/user", authHandler.Me, appmw.RequireSession(sessions))

	addr := ":" + cfg.Port
	logger.Infof("Starting server on %s", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("server error: %v", err)
	}
}
