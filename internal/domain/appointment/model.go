package appointment

import (
	"errors"
	"time"
)

// Appointment statuses. Cancelled and Rescheduled are terminal; a reschedule
// always creates a sibling row in Scheduled.
const (
	StatusScheduled   = "Scheduled"
	StatusCancelled   = "Cancelled"
	StatusRescheduled = "Rescheduled"
)

// ErrNotFound is returned when a referenced appointment does not exist. Its
// text is part of the HTTP contract.
var ErrNotFound = errors.New("Appointment not found")

// Appointment maps to the appointments table. Date is an ISO calendar date
// ("2006-01-02") and Time a 24-hour local time ("15:04"); both are stored and
// compared as text with no timezone handling.
type Appointment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patientId"`
	DoctorID  int64     `db:"doctor_id" json:"doctorId"`
	Date      string    `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
