package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dclavijo/tienda-backend/internal/tokens"
)

// Guard authenticates requests from the signed cookie. One status-code
// convention throughout: 401 for missing or bad credentials, 403 only for an
// authenticated identity that lacks the role.
type Guard struct {
	CookieName string
	Secret     []byte
}

func (g *Guard) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(g.CookieName)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		claims, err := tokens.AccessClaimsFromToken(cookie.Value, g.Secret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		setUserContext(c, claims)
		return next(c)
	}
}

// AdminOnly assumes RequireLogin already ran on the route.
func (g *Guard) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, ok := c.Get("userRole").(string)
		if !ok || role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) {
	c.Set("userID", claims.ID)
	c.Set("userName", claims.Name)
	c.Set("userRole", claims.Role)
}

// UserID reads the identity the guard attached to the request.
func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get("userID").(uint)
	if !ok {
		return 0, errors.New("no identity in request context")
	}
	return id, nil
}
