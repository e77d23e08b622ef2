package medicalrecord

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("Medical record not found")

// TestResult is one lab or imaging result attached to a record.
type TestResult struct {
	Type   string `json:"type"`
	Result string `json:"result"`
}

// MedicalRecord maps to the medical_records table. The list-valued fields are
// stored as JSONB columns.
type MedicalRecord struct {
	ID                int64        `db:"id" json:"id"`
	PatientID         int64        `db:"patient_id" json:"patientId"`
	DoctorID          int64        `db:"doctor_id" json:"doctorId"`
	Diagnosis         string       `db:"diagnosis" json:"diagnosis"`
	Prescriptions     []string     `db:"prescriptions" json:"prescriptions"`
	Notes             string       `db:"notes" json:"notes"`
	TestResults       []TestResult `db:"test_results" json:"testResults"`
	OngoingTreatments []string     `db:"ongoing_treatments" json:"ongoingTreatments"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time    `db:"updated_at" json:"updated_at"`
}
