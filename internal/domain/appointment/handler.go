package appointment

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/auth"
)

// Auditor records one immutable entry per completed action. Satisfied by the
// auditlog domain service. Failures must not affect the response.
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
	g := api.Group("/appointments")
	g.POST("", h.Create, auth.RequireRole(auth.RolePatient))
	g.DELETE("/:id", h.Cancel, auth.RequireRole(auth.RolePatient))
	g.PUT("/:id", h.Reschedule, auth.RequireRole(auth.RolePatient))
	g.GET("/doctors/:doctorId/schedule", h.DoctorSchedule, auth.RequireRole(auth.RoleDoctor, auth.RoleAdmin))
}

type createRequest struct {
	PatientID int64   `json:"patientId"`
	DoctorID  int64   `json:"doctorId"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Reason    *string `json:"reason"`
}

func (h *Handler) Create(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if req.PatientID != ident.UserID {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Patients can only create their own appointments")
	}
	if req.DoctorID == 0 || req.Date == "" || req.Time == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "doctorId, date and time are required")
	}

	id, err := h.svc.Create(c.Request().Context(), &Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.recordAudit(c, "CREATE_APPOINTMENT", fmt.Sprintf("Created appointment with ID %d", id))

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"appointmentId": id,
		"message":       "Appointment created successfully",
	})
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	a, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		// NotFound is surfaced as 400 with its exact message, not 404.
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !auth.CanAccessOwned(ident, a.PatientID) {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Patients can only cancel their own appointments")
	}

	if err := h.svc.Cancel(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.recordAudit(c, "CANCEL_APPOINTMENT", fmt.Sprintf("Cancelled appointment with ID %d", id))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Appointment cancelled successfully",
	})
}

type rescheduleRequest struct {
	NewDate string `json:"newDate"`
	NewTime string `json:"newTime"`
}

func (h *Handler) Reschedule(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}

	var req rescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.NewDate == "" || req.NewTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "newDate and newTime are required")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	a, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if !auth.CanAccessOwned(ident, a.PatientID) {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Patients can only reschedule their own appointments")
	}

	if _, err := h.svc.Reschedule(c.Request().Context(), id, req.NewDate, req.NewTime); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	h.recordAudit(c, "RESCHEDULE_APPOINTMENT",
		fmt.Sprintf("Rescheduled appointment with ID %d to %s at %s", id, req.NewDate, req.NewTime))

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Appointment rescheduled successfully",
	})
}

func (h *Handler) DoctorSchedule(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.Param("doctorId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if !auth.CanAccessOwned(ident, doctorID, auth.RoleAdmin) {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Doctors can only access their own schedule")
	}

	items, err := h.svc.DoctorSchedule(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if items == nil {
		items = []*Appointment{}
	}

	h.recordAudit(c, "GET_DOCTOR_SCHEDULE", fmt.Sprintf("Fetched schedule for doctor with ID %d", doctorID))

	return c.JSON(http.StatusOK, items)
}

// recordAudit appends one entry attributing the completed action to the
// caller. The primary operation has already committed; a failed append is
// logged and the response is unchanged.
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
