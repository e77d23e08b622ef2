package specialty

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Specialty, error) {
	return s.repo.List(ctx)
}

// SetForDoctor validates each specialty id before replacing the doctor's set.
func (s *Service) SetForDoctor(ctx context.Context, doctorID int64, specialtyIDs []int64) error {
	for _, sid := range specialtyIDs {
		if _, err := s.repo.GetByID(ctx, sid); err != nil {
			return err
		}
	}
	return s.repo.SetForDoctor(ctx, doctorID, specialtyIDs)
}

func (s *Service) ListForDoctor(ctx context.Context, doctorID int64) ([]*Specialty, error) {
	return s.repo.ListForDoctor(ctx, doctorID)
}

func (s *Service) DoctorsBySpecialty(ctx context.Context, specialtyID int64) ([]*Doctor, error) {
	if _, err := s.repo.GetByID(ctx, specialtyID); err != nil {
		return nil, err
	}
	return s.repo.DoctorsBySpecialty(ctx, specialtyID)
}
