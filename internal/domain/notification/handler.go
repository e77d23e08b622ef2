package notification

import (
	"net/http"
	"strconv"

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
	g := api.Group("/notifications")
	g.GET("", h.List)
	g.PUT("/:id/read", h.MarkRead)
}

// List returns the caller's own notifications in insertion order. There is
// no cross-user access, not even for admins.
func (h *Handler) List(c echo.Context) error {
	ident, _ := auth.IdentityFromContext(c.Request().Context())
	p := pagination.FromContext(c)

	items, total, err := h.svc.ListByRecipient(c.Request().Context(), ident.UserID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notifications")
	}
	if items == nil {
		items = []*Notification{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, int(total), p.Limit, p.Offset))
}

func (h *Handler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if err := h.svc.MarkRead(c.Request().Context(), id, ident.UserID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update notification")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
