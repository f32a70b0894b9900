package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dclavijo/tienda-backend/internal/hash"
	"github.com/dclavijo/tienda-backend/internal/models"
)

func TestSignUp(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"email":    "ana@example.com",
		"password": "password",
		"name":     "Ana",
	}

	rec, c := env.doJSON(http.MethodPost, "/api/auth/signup", payload)
	require.NoError(t, env.Auth.SignUp(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "account created", body["message"])
	require.NotEmpty(t, body["token"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, testCookieName, cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)

	var user models.User
	require.NoError(t, env.DB.Where("email = ?", "ana@example.com").First(&user).Error)
	require.Equal(t, "Ana", user.Name)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "password", user.PasswordHash)
}

func TestSignUpMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSON(http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "ana@example.com",
	})

	err := env.Auth.SignUp(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]string{
		"email":    "ana@example.com",
		"password": "password",
		"name":     "Ana",
	}

	_, c := env.doJSON(http.MethodPost, "/api/auth/signup", payload)
	require.NoError(t, env.Auth.SignUp(c))

	_, c2 := env.doJSON(http.MethodPost, "/api/auth/signup", payload)
	err := env.Auth.SignUp(c2)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusConflict, he.Code)

	var count int64
	env.DB.Model(&models.User{}).Where("email = ?", "ana@example.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestLogIn(t *testing.T) {
	env := newTestEnv(t)

	hashed, err := hash.HashPassword("password")
	require.NoError(t, err)
	env.DB.Create(&models.User{
		Email:        "ana@example.com",
		PasswordHash: hashed,
		Name:         "Ana",
		Role:         "user",
	})

	rec, c := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "password",
	})
	require.NoError(t, env.Auth.LogIn(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.NotEmpty(t, body["token"])
	require.Len(t, rec.Result().Cookies(), 1)
}

func TestLogInBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	hashed, _ := hash.HashPassword("password")
	env.DB.Create(&models.User{
		Email:        "ana@example.com",
		PasswordHash: hashed,
		Name:         "Ana",
		Role:         "user",
	})

	// wrong password
	_, c := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ana@example.com",
		"password": "not-the-password",
	})
	err := env.Auth.LogIn(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	// unknown email
	_, c2 := env.doJSON(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nadie@example.com",
		"password": "password",
	})
	err = env.Auth.LogIn(c2)
	he, ok = err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)

	user := models.User{Email: "ana@example.com", PasswordHash: "x", Name: "Ana", Role: "user"}
	env.DB.Create(&user)
	env.DB.Create(&models.Wallet{UserID: user.ID, Monto: decimal.NewFromFloat(50)})

	rec, c := env.doJSON(http.MethodGet, "/api/auth/profile", nil)
	asUser(c, user.ID, "user")
	require.NoError(t, env.Auth.Profile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Equal(t, "Ana", body["name"])
	require.Equal(t, "ana@example.com", body["email"])
	require.EqualValues(t, 50, body["walletBalance"])
}

func TestProfileWithoutWallet(t *testing.T) {
	env := newTestEnv(t)

	user := models.User{Email: "ana@example.com", PasswordHash: "x", Name: "Ana", Role: "user"}
	env.DB.Create(&user)

	rec, c := env.doJSON(http.MethodGet, "/api/auth/profile", nil)
	asUser(c, user.ID, "user")
	require.NoError(t, env.Auth.Profile(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.EqualValues(t, 0, body["walletBalance"])
}
