package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test_secret")

func TestSignAndParse(t *testing.T) {
	token, err := SignAccessToken(3, "Ana", "admin", testSecret)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, uint(3), claims.ID)
	require.Equal(t, "Ana", claims.Name)
	require.Equal(t, "admin", claims.Role)
	require.WithinDuration(t, time.Now().Add(AccessTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := SignAccessToken(3, "Ana", "user", testSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, []byte("wrong"))
	require.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	claims := AccessClaims{
		ID:   3,
		Name: "Ana",
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, testSecret)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseWrongMethod(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, AccessClaims{ID: 3}).SignedString(testSecret)
	require.NoError(t, err)

	_, err = AccessClaimsFromToken(token, testSecret)
	require.Error(t, err)
}
