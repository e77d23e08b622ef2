package department

import (
	"context"
	"errors"
)

var ErrNameRequired = errors.New("name is required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Department, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, name string) (*Department, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	d := &Department{Name: name}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}
