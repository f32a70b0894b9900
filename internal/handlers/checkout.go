package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/logging"
	authmw "github.com/dclavijo/tienda-backend/internal/middleware/auth"
	"github.com/dclavijo/tienda-backend/internal/service"
)

type CheckoutHandler struct {
	Svc *service.CheckoutService
}

func (h *CheckoutHandler) Purchase(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.purchase")

	userID, err := authmw.UserID(c)
	if err != nil {
		l.Warn("purchase_error", "status", 401, "reason", "no identity", "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	receipt, err := h.Svc.Purchase(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			l.Warn("purchase_error", "status", 400, "reason", "empty cart")
			return echo.NewHTTPError(http.StatusBadRequest, "cart is empty")
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			l.Warn("purchase_error", "status", 400, "reason", "insufficient funds", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "not enough funds in wallet")
		}
		l.Error("purchase_error", "status", 500, "reason", "cannot complete purchase", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot complete purchase")
	}

	l.Info("purchase_success", "user_id", userID, "receipt_id", receipt.ID, "monto", receipt.Monto)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "purchase completed",
		"compra": echo.Map{
			"compraId": receipt.ID,
			"fecha":    receipt.Fecha,
			"monto":    receipt.Monto,
			"cantidad": receipt.Cantidad,
		},
	})
}
