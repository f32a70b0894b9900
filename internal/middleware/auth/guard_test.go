package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/dclavijo/tienda-backend/internal/tokens"
)

var testSecret = []byte("test_secret")

func newGuardContext(t *testing.T, cookie *http.Cookie) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestRequireLogin(t *testing.T) {
	g := &Guard{CookieName: "access_token", Secret: testSecret}

	token, err := tokens.SignAccessToken(7, "Ana", "user", testSecret)
	require.NoError(t, err)

	c := newGuardContext(t, &http.Cookie{Name: "access_token", Value: token})

	called := false
	h := g.RequireLogin(func(c echo.Context) error {
		called = true
		return nil
	})
	require.NoError(t, h(c))
	require.True(t, called)

	require.Equal(t, uint(7), c.Get("userID"))
	require.Equal(t, "Ana", c.Get("userName"))
	require.Equal(t, "user", c.Get("userRole"))

	id, err := UserID(c)
	require.NoError(t, err)
	require.Equal(t, uint(7), id)
}

func TestRequireLoginMissingCookie(t *testing.T) {
	g := &Guard{CookieName: "access_token", Secret: testSecret}

	c := newGuardContext(t, nil)

	err := g.RequireLogin(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireLoginBadToken(t *testing.T) {
	g := &Guard{CookieName: "access_token", Secret: testSecret}

	// signed with a different secret
	token, err := tokens.SignAccessToken(7, "Ana", "user", []byte("other_secret"))
	require.NoError(t, err)

	c := newGuardContext(t, &http.Cookie{Name: "access_token", Value: token})

	err = g.RequireLogin(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestAdminOnly(t *testing.T) {
	g := &Guard{CookieName: "access_token", Secret: testSecret}

	c := newGuardContext(t, nil)
	c.Set("userRole", "admin")

	called := false
	require.NoError(t, g.AdminOnly(func(c echo.Context) error {
		called = true
		return nil
	})(c))
	require.True(t, called)
}

func TestAdminOnlyForbidden(t *testing.T) {
	g := &Guard{CookieName: "access_token", Secret: testSecret}

	c := newGuardContext(t, nil)
	c.Set("userRole", "user")

	err := g.AdminOnly(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, he.Code)
}
