package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unimarket/backend/internal/service"
	"github.com/unimarket/backend/internal/transport"
	"github.com/unimarket/backend/pkg/logging"
)

type ActivityHTTP struct {
	Svc *service.ActivityService
}

func (h *ActivityHTTP) LogActivity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "activity.log")

	var req transport.ActivityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("log_activity_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "user_id, product_id, and action required")
	}
	if req.UserID == 0 || req.ProductID == 0 || req.Action == "" {
		l.Warn("log_activity_failed", "status", 400, "reason", "missing field")
		return echo.NewHTTPError(http.StatusBadRequest, "user_id, product_id, and action required")
	}

	if _, err := h.Svc.Log(ctx, req.UserID, req.ProductID, req.Action); err != nil {
		l.Error("log_activity_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	l.Info("log_activity_success", "user_id", req.UserID, "product_id", req.ProductID, "action", req.Action)
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "Activity logged successfully"})
}
