package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/dclavijo/tienda-backend/internal/handlers"
	authmw "github.com/dclavijo/tienda-backend/internal/middleware/auth"
)

type Deps struct {
	DB              *gorm.DB
	Guard           *authmw.Guard
	AuthHandler     *handlers.AuthHandler
	ProductHandler  *handlers.ProductHandler
	CartHandler     *handlers.CartHandler
	CheckoutHandler *handlers.CheckoutHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", d.AuthHandler.SignUp)
	auth.POST("/login", d.AuthHandler.LogIn)
	auth.GET("/profile", d.AuthHandler.Profile, d.Guard.RequireLogin)

	productos := api.Group("/productos")
	productos.GET("/products", d.ProductHandler.GetProducts)
	productos.GET("/products/:id", d.ProductHandler.GetProduct)
	productos.GET("/search", d.SearchHandler.Search)

	admin := api.Group("/admin", d.Guard.RequireLogin, d.Guard.AdminOnly)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.POST("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.GET("/totalEarned", d.ProductHandler.TotalEarned)

	carrito := api.Group("/carrito", d.Guard.RequireLogin)
	carrito.POST("/shoppingcart/:productId", d.CartHandler.AddOne)
	carrito.DELETE("/shoppingcart/:productId", d.CartHandler.RemoveOne)
	carrito.GET("/shoppingcart", d.CartHandler.GetCart)
	carrito.POST("/purchase", d.CheckoutHandler.Purchase)
}

// ErrorHandler renders every failure as {"error": message}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	_ = c.JSON(code, map[string]string{"error": msg})
}
