package department

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Department, error)
	// Create returns ErrNameTaken when the name already exists.
	Create(ctx context.Context, d *Department) error
}
