package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// ListByRecipient returns rows in insertion order.
	ListByRecipient(ctx context.Context, recipientID int64, limit, offset int) ([]*Notification, int64, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
}
