package notification

import "context"

// Service persists and lists notifications. It is the write target for the
// appointment lifecycle's fan-out; callers there treat failures as
// best-effort.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a message for the recipient and returns the assigned id.
func (s *Service) Create(ctx context.Context, recipientID int64, message string) (int64, error) {
	n := &Notification{RecipientID: recipientID, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return 0, err
	}
	return n.ID, nil
}

func (s *Service) ListByRecipient(ctx context.Context, recipientID int64, limit, offset int) ([]*Notification, int64, error) {
	return s.repo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, id, recipientID int64) error {
	return s.repo.MarkRead(ctx, id, recipientID)
}
