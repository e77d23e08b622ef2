package availability

import "time"

// Availability is the set of open slots a doctor offers on one calendar date.
// Slots are "HH:mm" strings; a repeated set for the same (doctor, date)
// replaces the previous one.
type Availability struct {
	ID        int64     `db:"id" json:"id"`
	DoctorID  int64     `db:"doctor_id" json:"doctorId"`
	Date      string    `db:"date" json:"date"`
	Slots     []string  `db:"slots" json:"slots"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
