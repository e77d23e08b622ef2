package medicalrecord

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/medical-records")
	g.POST("", h.Create, auth.RequireRole(auth.RoleDoctor))
	g.PUT("/:id", h.Update, auth.RequireRole(auth.RoleDoctor))
	g.GET("/:id", h.Get)
	g.GET("/patients/:patientId", h.ListByPatient)
}

type recordRequest struct {
	PatientID         int64        `json:"patientId"`
	Diagnosis         string       `json:"diagnosis"`
	Prescriptions     []string     `json:"prescriptions"`
	Notes             string       `json:"notes"`
	TestResults       []TestResult `json:"testResults"`
	OngoingTreatments []string     `json:"ongoingTreatments"`
}

func (h *Handler) Create(c echo.Context) error {
	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	id, err := h.svc.Create(c.Request().Context(), &MedicalRecord{
		PatientID:         req.PatientID,
		DoctorID:          ident.UserID,
		Diagnosis:         req.Diagnosis,
		Prescriptions:     req.Prescriptions,
		Notes:             req.Notes,
		TestResults:       req.TestResults,
		OngoingTreatments: req.OngoingTreatments,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create medical record")
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"recordId": id,
		"message":  "Medical record created successfully",
	})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	var req recordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	existing, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medical record")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if existing.DoctorID != ident.UserID {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Doctors can only update their own records")
	}

	existing.Diagnosis = req.Diagnosis
	existing.Prescriptions = req.Prescriptions
	existing.Notes = req.Notes
	existing.TestResults = req.TestResults
	existing.OngoingTreatments = req.OngoingTreatments

	if err := h.svc.Update(c.Request().Context(), existing); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update medical record")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Medical record updated successfully"})
}

// Get returns one record. Patients may only read their own; doctors and
// admins may read any.
func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid record id")
	}

	m, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch medical record")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if !auth.CanAccessOwned(ident, m.PatientID, auth.RoleDoctor, auth.RoleAdmin) {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Patients can only access their own records")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("patientId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}

	ident, _ := auth.IdentityFromContext(c.Request().Context())
	if !auth.CanAccessOwned(ident, patientID, auth.RoleDoctor, auth.RoleAdmin) {
		return echo.NewHTTPError(http.StatusForbidden,
			"Forbidden: Patients can only access their own records")
	}

	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list medical records")
	}
	if items == nil {
		items = []*MedicalRecord{}
	}
	return c.JSON(http.StatusOK, items)
}
