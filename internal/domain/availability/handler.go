package availability

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/auth"
)

// Auditor records one immutable entry per completed action.
type Auditor interface {
	Log(ctx context.Context, userID int64, action, details string) error
}

type Handler struct {
	svc    *Service
	audit  Auditor
	logger zerolog.Logger
}

func NewHandler(svc *Service, audit Auditor, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, audit: audit, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/availability")
	g.POST("/doctors/:doctorId", h.Set, auth.RequireRole(auth.RoleDoctor))
	g.GET("/doctors/:doctorId", h.List)
}

type setRequest struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Set replaces the doctor's slots for one date. Doctors may only write their
// own availability.
func (h *Handler) Set(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("doctorId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if !auth.CanAccessOwned(ident, doctorID) {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Doctors can only set their own availability")
	}

	var req setRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := h.svc.Set(c.Request().Context(), doctorID, req.Date, req.Slots)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.recordAudit(c, "SET_AVAILABILITY",
		fmt.Sprintf("Set availability for doctor with ID %d on %s", doctorID, req.Date))

	return c.JSON(http.StatusOK, a)
}

// List returns the doctor's availability, optionally narrowed to one date via
// the "date" query parameter. Readable by any authenticated user.
func (h *Handler) List(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("doctorId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}

	if date := c.QueryParam("date"); date != "" {
		a, err := h.svc.GetByDoctorDate(c.Request().Context(), doctorID, date)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch availability")
		}
		if a == nil {
			return c.JSON(http.StatusOK, []*Availability{})
		}
		return c.JSON(http.StatusOK, []*Availability{a})
	}

	items, err := h.svc.ListByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch availability")
	}
	if items == nil {
		items = []*Availability{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) recordAudit(c echo.Context, action, details string) {
	ctx := c.Request().Context()
	ident, _ := auth.IdentityFromContext(ctx)
	if err := h.audit.Log(ctx, ident.UserID, action, details); err != nil {
		h.logger.Warn().Err(err).
			Str("action", action).
			Int64("user_id", ident.UserID).
			Msg("audit append failed")
	}
}
