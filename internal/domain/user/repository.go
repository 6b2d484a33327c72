package user

import (
	"context"

	"ticketd/internal/shared/query"
)

type Repository interface {
	// Save persists a new user. A user with the same email must not exist.
	Save(ctx context.Context, user *User) error
	// Update persists profile changes. The email uniqueness check ignores the
	// user's own row.
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetByEmail returns nil without error when no user matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Exists reports whether a user row with the given id is present.
	Exists(ctx context.Context, userID uint) (bool, error)
	// List returns one fixed-size page of users ordered by id descending.
	List(ctx context.Context, page int) ([]*User, query.PageMeta, error)
}
