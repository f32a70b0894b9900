package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dclavijo/tienda-backend/internal/domain"
	"github.com/dclavijo/tienda-backend/internal/logging"
	"github.com/dclavijo/tienda-backend/internal/service"
	"github.com/dclavijo/tienda-backend/internal/util"
)

type SearchHandler struct {
	Svc *service.SearchService
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, limit := util.Calculate(page, size)

	total, products, err := h.Svc.Search(ctx, q, from, limit)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			l.Warn("search_error", "status", 400, "reason", "missing query")
			return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
		}
		if errors.Is(err, service.ErrSearchUnavailable) {
			l.Warn("search_error", "status", 503, "reason", "search disabled")
			return echo.NewHTTPError(http.StatusServiceUnavailable, "search is not available")
		}
		l.Error("search_error", "status", 500, "reason", "search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "productos": products})
}
