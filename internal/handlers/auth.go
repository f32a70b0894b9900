package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/logging"
	authmw "github.com/dclavijo/tienda-backend/internal/middleware/auth"
	"github.com/dclavijo/tienda-backend/internal/service"
	"github.com/dclavijo/tienda-backend/internal/tokens"
	"github.com/dclavijo/tienda-backend/internal/transport"
)

type AuthHandler struct {
	Svc        *service.AuthService
	JWTSecret  []byte
	CookieName string
}

func (h *AuthHandler) SignUp(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignUpRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		l.Warn("signup_error", "status", 400, "reason", "missing fields")
		return echo.NewHTTPError(http.StatusBadRequest, "email, password and name are required")
	}

	user, err := h.Svc.SignUp(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			l.Warn("signup_error", "status", 409, "reason", "email taken", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		}
		l.Error("signup_error", "status", 500, "reason", "cannot create user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
	}

	token, err := tokens.SignAccessToken(user.ID, user.Name, user.Role, h.JWTSecret)
	if err != nil {
		l.Error("signup_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	c.SetCookie(CreateCookie(h.CookieName, token, "/", time.Now().Add(tokens.AccessTTL)))

	l.Info("signup_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "account created",
		"token":   token,
	})
}

func (h *AuthHandler) LogIn(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LogInRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		l.Warn("login_error", "status", 400, "reason", "missing fields")
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := h.Svc.LogIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrBadCredentials) {
			l.Warn("login_error", "status", 401, "reason", "bad credentials")
			return echo.NewHTTPError(http.StatusUnauthorized, "wrong email or password")
		}
		l.Error("login_error", "status", 500, "reason", "cannot log in", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
	}

	token, err := tokens.SignAccessToken(user.ID, user.Name, user.Role, h.JWTSecret)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot sign token")
	}

	c.SetCookie(CreateCookie(h.CookieName, token, "/", time.Now().Add(tokens.AccessTTL)))

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"token":   token,
	})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.profile")

	userID, err := authmw.UserID(c)
	if err != nil {
		l.Warn("profile_error", "status", 401, "reason", "no identity", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	profile, err := h.Svc.Profile(ctx, userID)
	if err != nil {
		l.Error("profile_error", "status", 500, "reason", "cannot load profile", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load profile")
	}

	return c.JSON(http.StatusOK, profile)
}
