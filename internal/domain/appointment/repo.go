package appointment

import "context"

type Repository interface {
	// Create persists the row with status forced to Scheduled and fills in
	// the assigned identifier.
	Create(ctx context.Context, a *Appointment) error
	// GetByID returns ErrNotFound when the row does not exist.
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	// DoctorSchedule returns only Scheduled rows, ordered by date then time.
	DoctorSchedule(ctx context.Context, doctorID int64) ([]*Appointment, error)
}
