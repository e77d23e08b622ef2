package medicalrecord

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("patientId and diagnosis are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a record authored by the doctor. Empty list fields are
// normalised to empty slices so they serialise as [] rather than null.
func (s *Service) Create(ctx context.Context, m *MedicalRecord) (int64, error) {
	if m.PatientID == 0 || m.Diagnosis == "" {
		return 0, ErrMissingFields
	}
	normalise(m)
	if err := s.repo.Create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites the clinical fields of an existing record.
func (s *Service) Update(ctx context.Context, m *MedicalRecord) error {
	normalise(m)
	return s.repo.Update(ctx, m)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecord, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func normalise(m *MedicalRecord) {
	if m.Prescriptions == nil {
		m.Prescriptions = []string{}
	}
	if m.TestResults == nil {
		m.TestResults = []TestResult{}
	}
	if m.OngoingTreatments == nil {
		m.OngoingTreatments = []string{}
	}
}
