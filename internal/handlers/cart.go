package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/logging"
	authmw "github.com/dclavijo/tienda-backend/internal/middleware/auth"
	"github.com/dclavijo/tienda-backend/internal/service"
)

type CartHandler struct {
	Svc *service.CartService
}

func (h *CartHandler) AddOne(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_one")

	userID, err := authmw.UserID(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 401, "reason", "no identity", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := h.Svc.AddOne(ctx, userID, uint(productID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			l.Warn("add_to_cart_error", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			l.Warn("add_to_cart_error", "status", 400, "reason", "insufficient stock", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "not enough stock for this product")
		}
		l.Error("add_to_cart_error", "status", 500, "reason", "cannot add to cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add to cart")
	}

	l.Info("add_to_cart_success", "user_id", userID, "product_id", productID)
	return c.JSON(http.StatusOK, echo.Map{"message": "product added to cart"})
}

func (h *CartHandler) RemoveOne(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_one")

	userID, err := authmw.UserID(c)
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 401, "reason", "no identity", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		l.Warn("remove_from_cart_error", "status", 400, "reason", "invalid product id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if _, err := h.Svc.RemoveOne(ctx, userID, uint(productID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "reason", "product not in cart", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not in cart")
		}
		l.Error("remove_from_cart_error", "status", 500, "reason", "cannot update cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update cart")
	}

	l.Info("remove_from_cart_success", "user_id", userID, "product_id", productID)
	return c.JSON(http.StatusOK, echo.Map{"message": "product removed from cart"})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID, err := authmw.UserID(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "reason", "no identity", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	items, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "reason", "cannot read cart", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}

	return c.JSON(http.StatusOK, echo.Map{"products": items})
}
