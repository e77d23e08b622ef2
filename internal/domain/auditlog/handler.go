package auditlog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
	"github.com/clinic/clinic/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/audit-logs")
	g.GET("", h.List, auth.RequireRole(auth.RoleAdmin))
}

// List returns audit entries newest first, optionally filtered by the
// "action" query parameter.
func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	action := c.QueryParam("action")

	items, total, err := h.svc.List(c.Request().Context(), action, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list audit logs")
	}
	if items == nil {
		items = []*Entry{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, int(total), p.Limit, p.Offset))
}
