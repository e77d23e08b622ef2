package availability

import (
	"context"
	"errors"
	"regexp"
	"sort"
)

var (
	ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidSlot = errors.New("slots must be in HH:mm format")
	ErrNoSlots     = errors.New("at least one slot is required")
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slotRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Set validates and stores the doctor's slots for the date, replacing any
// previous set. Slots are deduplicated and sorted; times sort correctly as
// text in 24-hour form.
func (s *Service) Set(ctx context.Context, doctorID int64, date string, slots []string) (*Availability, error) {
	if !dateRe.MatchString(date) {
		return nil, ErrInvalidDate
	}
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	seen := make(map[string]struct{}, len(slots))
	clean := make([]string, 0, len(slots))
	for _, slot := range slots {
		if !slotRe.MatchString(slot) {
			return nil, ErrInvalidSlot
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		clean = append(clean, slot)
	}
	sort.Strings(clean)

	a := &Availability{DoctorID: doctorID, Date: date, Slots: clean}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Availability, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) GetByDoctorDate(ctx context.Context, doctorID int64, date string) (*Availability, error) {
	return s.repo.GetByDoctorDate(ctx, doctorID, date)
}
