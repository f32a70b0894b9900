package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/dclavijo/tienda-backend/internal/db"
	"github.com/dclavijo/tienda-backend/internal/repo"
	"github.com/dclavijo/tienda-backend/internal/service"
)

const testCookieName = "access_token"

var testSecret = []byte("test_secret")

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	DB       *gorm.DB
	Repo     *repo.GormRepo
	Auth     *AuthHandler
	Product  *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	require.NoError(t, dbpkg.Migrate(db))

	gormRepo := &repo.GormRepo{DB: db}

	return &testEnv{
		T:    t,
		E:    echo.New(),
		DB:   db,
		Repo: gormRepo,
		Auth: &AuthHandler{
			Svc:        &service.AuthService{Repo: gormRepo},
			JWTSecret:  testSecret,
			CookieName: testCookieName,
		},
		Product:  &ProductHandler{Svc: &service.CatalogService{Repo: gormRepo}},
		Cart:     &CartHandler{Svc: &service.CartService{Repo: gormRepo}},
		Checkout: &CheckoutHandler{Svc: &service.CheckoutService{Repo: gormRepo}},
	}
}

func (env *testEnv) doJSON(method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(env.T, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

// asUser attaches the identity the auth guard would have set.
func asUser(c echo.Context, id uint, role string) {
	c.Set("userID", id)
	c.Set("userName", "test_user")
	c.Set("userRole", role)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
