package auditlog

import "context"

type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// List returns entries newest first, optionally filtered by action.
	List(ctx context.Context, action string, limit, offset int) ([]*Entry, int64, error)
}
