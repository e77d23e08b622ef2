package auditlog

import "context"

// Service appends and lists audit entries. Appends happen after the audited
// operation has committed; the caller decides whether an append failure is
// fatal (for request handlers it never is).
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Log appends one entry attributing the action to the user.
func (s *Service) Log(ctx context.Context, userID int64, action, details string) error {
	return s.repo.Append(ctx, &Entry{UserID: userID, Action: action, Details: details})
}

func (s *Service) List(ctx context.Context, action string, limit, offset int) ([]*Entry, int64, error) {
	return s.repo.List(ctx, action, limit, offset)
}
