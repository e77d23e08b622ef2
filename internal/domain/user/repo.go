package user

import "context"

// SearchFilter narrows a user search. Zero values mean "no filter".
type SearchFilter struct {
	Role string
	Name string
}

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByID returns ErrNotFound when the row does not exist.
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByEmail returns ErrNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, f SearchFilter, limit, offset int) ([]*User, int64, error)
}
