package appointment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type mockRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*Appointment

	createErr error
	updateErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{nextID: 1, rows: map[int64]*Appointment{}}
}

func (m *mockRepo) Create(ctx context.Context, a *Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	a.Status = StatusScheduled
	a.ID = m.nextID
	m.nextID++
	cp := *a
	m.rows[a.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	if a, ok := m.rows[id]; ok {
		a.Status = status
	}
	return nil
}

func (m *mockRepo) DoctorSchedule(ctx context.Context, doctorID int64) ([]*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []*Appointment
	for _, a := range m.rows {
		if a.DoctorID == doctorID && a.Status == StatusScheduled {
			cp := *a
			items = append(items, &cp)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
	return items, nil
}

type sentNotification struct {
	RecipientID int64
	Message     string
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (m *mockNotifier) Create(ctx context.Context, recipientID int64, message string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.sent = append(m.sent, sentNotification{RecipientID: recipientID, Message: message})
	return int64(len(m.sent)), nil
}

func (m *mockNotifier) forRecipient(id int64) []sentNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []sentNotification
	for _, n := range m.sent {
		if n.RecipientID == id {
			out = append(out, n)
		}
	}
	return out
}

func newTestService(repo *mockRepo, notifier *mockNotifier) *Service {
	return NewService(repo, notifier, zerolog.Nop())
}

func TestServiceCreate(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	id, err := svc.Create(context.Background(), &Appointment{
		PatientID: 1, DoctorID: 2, Date: "2026-09-01", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected assigned id")
	}

	a, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Errorf("expected status %s, got %s", StatusScheduled, a.Status)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
	patientMsgs := notifier.forRecipient(1)
	if len(patientMsgs) != 1 {
		t.Fatalf("expected 1 patient notification, got %d", len(patientMsgs))
	}
	want := "Your appointment on 2026-09-01 at 10:00 has been scheduled."
	if patientMsgs[0].Message != want {
		t.Errorf("patient message = %q, want %q", patientMsgs[0].Message, want)
	}
	if len(notifier.forRecipient(2)) != 1 {
		t.Error("expected 1 doctor notification")
	}
}

func TestServiceCreate_NotifierFailureDoesNotAbort(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{err: errors.New("store down")}
	svc := newTestService(repo, notifier)

	id, err := svc.Create(context.Background(), &Appointment{
		PatientID: 1, DoctorID: 2, Date: "2026-09-01", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("expected success despite notifier failure, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), id); err != nil {
		t.Errorf("appointment should be persisted: %v", err)
	}
}

func TestServiceCancel(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	id, err := svc.Create(context.Background(), &Appointment{
		PatientID: 1, DoctorID: 2, Date: "2026-09-01", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	notifier.sent = nil

	if err := svc.Cancel(context.Background(), id); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	a, _ := svc.GetByID(context.Background(), id)
	if a.Status != StatusCancelled {
		t.Errorf("expected %s, got %s", StatusCancelled, a.Status)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
	// Cancellation messages carry the original date and time.
	want := "Your appointment on 2026-09-01 at 10:00 has been cancelled."
	if got := notifier.forRecipient(1)[0].Message; got != want {
		t.Errorf("patient message = %q, want %q", got, want)
	}
}

func TestServiceCancel_AlreadyCancelled(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	id, _ := svc.Create(context.Background(), &Appointment{
		PatientID: 1, DoctorID: 2, Date: "2026-09-01", Time: "10:00",
	})
	if err := svc.Cancel(context.Background(), id); err != nil {
		t.Fatalf("first Cancel: %v", err)
	}
	// Cancelling again is permitted; last write wins.
	if err := svc.Cancel(context.Background(), id); err != nil {
		t.Fatalf("second Cancel: %v", err)
	}
}

func TestServiceCancel_NotFound(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	err := svc.Cancel(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("expected no notifications, got %d", len(notifier.sent))
	}
}

func TestServiceReschedule(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	reason := "checkup"
	origID, _ := svc.Create(context.Background(), &Appointment{
		PatientID: 1, DoctorID: 2, Date: "2026-09-01", Time: "10:00", Reason: &reason,
	})
	notifier.sent = nil

	newID, err := svc.Reschedule(context.Background(), origID, "2026-09-05", "14:30")
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}
	if newID == origID {
		t.Fatal("expected a new identifier for the rescheduled appointment")
	}

	orig, _ := svc.GetByID(context.Background(), origID)
	if orig.Status != StatusRescheduled {
		t.Errorf("original status = %s, want %s", orig.Status, StatusRescheduled)
	}

	next, err := svc.GetByID(context.Background(), newID)
	if err != nil {
		t.Fatalf("GetByID new: %v", err)
	}
	if next.Status != StatusScheduled {
		t.Errorf("new status = %s, want %s", next.Status, StatusScheduled)
	}
	if next.PatientID != 1 || next.DoctorID != 2 {
		t.Error("new appointment must inherit patient and doctor")
	}
	if next.Reason == nil || *next.Reason != reason {
		t.Error("new appointment must inherit reason")
	}
	if next.Date != "2026-09-05" || next.Time != "14:30" {
		t.Errorf("new date/time = %s %s", next.Date, next.Time)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifier.sent))
	}
	want := "Your appointment has been rescheduled to 2026-09-05 at 14:30."
	if got := notifier.forRecipient(1)[0].Message; got != want {
		t.Errorf("patient message = %q, want %q", got, want)
	}
}

func TestServiceReschedule_NotFound(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	_, err := svc.Reschedule(context.Background(), 999, "2026-09-05", "14:30")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(notifier.sent) != 0 {
		t.Errorf("expected no notifications, got %d", len(notifier.sent))
	}
}

func TestServiceDoctorSchedule(t *testing.T) {
	repo := newMockRepo()
	notifier := &mockNotifier{}
	svc := newTestService(repo, notifier)

	ctx := context.Background()
	_, _ = svc.Create(ctx, &Appointment{PatientID: 1, DoctorID: 2, Date: "2026-09-02", Time: "09:00"})
	_, _ = svc.Create(ctx, &Appointment{PatientID: 1, DoctorID: 2, Date: "2026-09-01", Time: "11:00"})
	cancelled, _ := svc.Create(ctx, &Appointment{PatientID: 1, DoctorID: 2, Date: "2026-09-03", Time: "08:00"})
	_, _ = svc.Create(ctx, &Appointment{PatientID: 1, DoctorID: 9, Date: "2026-09-01", Time: "08:00"})
	if err := svc.Cancel(ctx, cancelled); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	items, err := svc.DoctorSchedule(ctx, 2)
	if err != nil {
		t.Fatalf("DoctorSchedule: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 scheduled items, got %d", len(items))
	}
	if items[0].Date != "2026-09-01" || items[1].Date != "2026-09-02" {
		t.Errorf("schedule not ordered by date: %s, %s", items[0].Date, items[1].Date)
	}
	for _, a := range items {
		if a.Status != StatusScheduled {
			t.Errorf("unexpected status %s in schedule", a.Status)
		}
		if a.DoctorID != 2 {
			t.Errorf("unexpected doctor %d in schedule", a.DoctorID)
		}
	}
}
