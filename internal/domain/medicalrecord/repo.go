package medicalrecord

import "context"

type Repository interface {
	Create(ctx context.Context, m *MedicalRecord) error
	// GetByID returns ErrNotFound when the row does not exist.
	GetByID(ctx context.Context, id int64) (*MedicalRecord, error)
	Update(ctx context.Context, m *MedicalRecord) error
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error)
}
