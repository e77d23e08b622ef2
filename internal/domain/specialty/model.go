package specialty

import "errors"

var ErrNotFound = errors.New("Specialty not found")

// Specialty is a clinical discipline a doctor can be associated with. The
// base set is seeded by migration.
type Specialty struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// DoctorSpecialty links one doctor to one specialty.
type DoctorSpecialty struct {
	DoctorID    int64 `db:"doctor_id" json:"doctorId"`
	SpecialtyID int64 `db:"specialty_id" json:"specialtyId"`
}
