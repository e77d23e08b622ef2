package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// Notifier persists per-recipient messages. Satisfied by the notification
// domain service.
type Notifier interface {
	Create(ctx context.Context, recipientID int64, message string) (int64, error)
}

// Service orchestrates the appointment lifecycle: schedule, cancel and
// reschedule, plus the notification fan-out each mutation triggers.
// Notification failures are logged and never abort the primary mutation.
type Service struct {
	repo     Repository
	notifier Notifier
	logger   zerolog.Logger
}

func NewService(repo Repository, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

// Create persists a new appointment in Scheduled status and notifies both
// parties. No slot-conflict checking is performed; patient/doctor references
// are enforced by foreign keys at the store.
func (s *Service) Create(ctx context.Context, a *Appointment) (int64, error) {
	if err := s.repo.Create(ctx, a); err != nil {
		return 0, err
	}
	s.notifyParties(ctx, a,
		fmt.Sprintf("Your appointment on %s at %s has been scheduled.", a.Date, a.Time),
		fmt.Sprintf("A new appointment has been scheduled on %s at %s.", a.Date, a.Time))
	return a.ID, nil
}

// Cancel moves the appointment to Cancelled. Cancelling an already-Cancelled
// row is permitted; last write wins. Returns ErrNotFound if the id is absent.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}
	s.notifyParties(ctx, a,
		fmt.Sprintf("Your appointment on %s at %s has been cancelled.", a.Date, a.Time),
		fmt.Sprintf("The appointment on %s at %s has been cancelled.", a.Date, a.Time))
	return nil
}

// Reschedule marks the original row Rescheduled and creates a sibling row in
// Scheduled with the new date/time. The original identifier is never reused.
func (s *Service) Reschedule(ctx context.Context, id int64, newDate, newTime string) (int64, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusRescheduled); err != nil {
		return 0, err
	}
	next := &Appointment{
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      newDate,
		Time:      newTime,
		Reason:    a.Reason,
	}
	if err := s.repo.Create(ctx, next); err != nil {
		return 0, err
	}
	s.notifyParties(ctx, a,
		fmt.Sprintf("Your appointment has been rescheduled to %s at %s.", newDate, newTime),
		fmt.Sprintf("An appointment has been rescheduled to %s at %s.", newDate, newTime))
	return next.ID, nil
}

// GetByID performs a direct lookup with no authorization; callers apply
// ownership checks against the returned owner fields.
func (s *Service) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// DoctorSchedule returns the doctor's Scheduled appointments ordered by
// (date, time) ascending.
func (s *Service) DoctorSchedule(ctx context.Context, doctorID int64) ([]*Appointment, error) {
	return s.repo.DoctorSchedule(ctx, doctorID)
}

// notifyParties writes one notification per party. The two inserts target
// different recipients and share no state, so they run concurrently. Failures
// are logged and swallowed.
func (s *Service) notifyParties(ctx context.Context, a *Appointment, patientMsg, doctorMsg string) {
	var wg sync.WaitGroup
	dispatch := func(recipientID int64, msg string) {
		defer wg.Done()
		if _, err := s.notifier.Create(ctx, recipientID, msg); err != nil {
			s.logger.Warn().Err(err).
				Int64("appointment_id", a.ID).
				Int64("recipient_id", recipientID).
				Msg("notification dispatch failed")
		}
	}
	wg.Add(2)
	go dispatch(a.PatientID, patientMsg)
	go dispatch(a.DoctorID, doctorMsg)
	wg.Wait()
}
