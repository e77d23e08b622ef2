package availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/auth"
)

type mockAuditor struct {
	entries []string
}

func (m *mockAuditor) Log(ctx context.Context, userID int64, action, details string) error {
	m.entries = append(m.entries, action)
	return nil
}

func newTestHandler() (*Handler, *mockRepo, *mockAuditor) {
	repo := newMockRepo()
	auditor := &mockAuditor{}
	return NewHandler(NewService(repo), auditor, zerolog.Nop()), repo, auditor
}

func request(t *testing.T, h echo.HandlerFunc, method, body string, ident auth.Identity, doctorID string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/availability/doctors/"+doctorID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(auth.WithIdentity(req.Context(), ident))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("doctorId")
	c.SetParamValues(doctorID)
	return rec, h(c)
}

func TestHandlerSet(t *testing.T) {
	h, repo, auditor := newTestHandler()
	ident := auth.Identity{UserID: 2, Role: auth.RoleDoctor}
	body := `{"date":"2026-09-01","slots":["10:00","09:00"]}`

	rec, err := request(t, h.Set, http.MethodPost, body, ident, "2")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(repo.rows))
	}
	if len(auditor.entries) != 1 || auditor.entries[0] != "SET_AVAILABILITY" {
		t.Errorf("expected one SET_AVAILABILITY audit entry, got %v", auditor.entries)
	}
}

func TestHandlerSet_ForbiddenForOtherDoctor(t *testing.T) {
	h, repo, auditor := newTestHandler()
	ident := auth.Identity{UserID: 9, Role: auth.RoleDoctor}
	body := `{"date":"2026-09-01","slots":["10:00"]}`

	_, err := request(t, h.Set, http.MethodPost, body, ident, "2")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
	if len(repo.rows) != 0 {
		t.Error("expected no row stored")
	}
	if len(auditor.entries) != 0 {
		t.Error("expected no audit entry")
	}
}

func TestHandlerSet_InvalidSlots(t *testing.T) {
	h, _, _ := newTestHandler()
	ident := auth.Identity{UserID: 2, Role: auth.RoleDoctor}

	_, err := request(t, h.Set, http.MethodPost, `{"date":"2026-09-01","slots":["9am"]}`, ident, "2")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandlerList(t *testing.T) {
	h, repo, _ := newTestHandler()
	svc := NewService(repo)
	if _, err := svc.Set(context.Background(), 2, "2026-09-01", []string{"09:00"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ident := auth.Identity{UserID: 1, Role: auth.RolePatient}
	rec, err := request(t, h.List, http.MethodGet, "", ident, "2")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "09:00") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
