package availability

import "context"

type Repository interface {
	// Upsert replaces any existing slot set for the same (doctor, date).
	Upsert(ctx context.Context, a *Availability) error
	// ListByDoctor returns all dates for the doctor ordered by date ascending.
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Availability, error)
	// GetByDoctorDate returns nil without error when no row exists.
	GetByDoctorDate(ctx context.Context, doctorID int64, date string) (*Availability, error)
}
