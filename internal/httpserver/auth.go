package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unimarket/backend/internal/service"
	"github.com/unimarket/backend/internal/transport"
	"github.com/unimarket/backend/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Name and email required")
	}
	if req.Name == "" || req.Email == "" {
		l.Warn("signup_failed", "status", 400, "reason", "missing name or email")
		return echo.NewHTTPError(http.StatusBadRequest, "Name and email required")
	}

	user, created, err := h.Svc.Signup(ctx, req.Name, req.Email)
	if err != nil {
		l.Error("signup_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	msg := "User created"
	if !created {
		msg = "User already exists"
	}

	l.Info("signup_success", "user_id", user.ID, "created", created)
	return c.JSON(http.StatusOK, transport.AuthResponse{Message: msg, UserID: user.ID})
}

// Login accepts a password field but never verifies it: no credential
// is stored on the user at all. An unknown email is not rejected, a new
// user is created from the given name and email.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Name and email required")
	}
	if req.Name == "" || req.Email == "" {
		l.Warn("login_failed", "status", 400, "reason", "missing name or email")
		return echo.NewHTTPError(http.StatusBadRequest, "Name and email required")
	}

	user, err := h.Svc.Login(ctx, req.Name, req.Email)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.AuthResponse{Message: "Login successful", UserID: user.ID})
}
