package specialty

import "context"

// Doctor is the projection returned by doctor-by-specialty lookups.
type Doctor struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

type Repository interface {
	List(ctx context.Context) ([]*Specialty, error)
	// GetByID returns ErrNotFound when the row does not exist.
	GetByID(ctx context.Context, id int64) (*Specialty, error)
	// SetForDoctor replaces the doctor's associations with the given set.
	SetForDoctor(ctx context.Context, doctorID int64, specialtyIDs []int64) error
	ListForDoctor(ctx context.Context, doctorID int64) ([]*Specialty, error)
	DoctorsBySpecialty(ctx context.Context, specialtyID int64) ([]*Doctor, error)
}
