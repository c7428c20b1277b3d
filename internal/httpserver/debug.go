package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unimarket/backend/internal/repo"
	"github.com/unimarket/backend/internal/seed"
	"github.com/unimarket/backend/internal/transport"
	"github.com/unimarket/backend/pkg/logging"
)

// DebugHTTP serves the diagnostic endpoints. They are admin-only in
// intent but carry no auth, matching the published contract.
type DebugHTTP struct {
	Repo     *repo.GormRepo
	SeedFile string
}

// ResetProducts drops every product and re-runs the seeder. Old product
// ids become dangling references in the activity log.
func (h *DebugHTTP) ResetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "debug.reset_products")

	if err := h.Repo.DeleteAllProducts(ctx); err != nil {
		l.Error("reset_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := seed.Products(ctx, h.Repo, h.SeedFile); err != nil {
		l.Error("reset_failed", "status", 500, "reason", "reseed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	l.Info("reset_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Products reset"})
}

func (h *DebugHTTP) DBInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "debug.db")

	users, err := h.Repo.CountUsers(ctx)
	if err != nil {
		l.Error("db_info_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	products, err := h.Repo.CountProducts(ctx)
	if err != nil {
		l.Error("db_info_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, transport.DBStatsResponse{Users: users, Products: products})
}
