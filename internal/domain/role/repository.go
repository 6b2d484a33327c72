package role

import (
	"context"

	"ticketd/internal/shared/query"
)

type Repository interface {
	// Save persists a new role. A role with the same name must not exist.
	Save(ctx context.Context, role *Role) error
	// Update persists changes to an existing role. The name uniqueness check
	// ignores the role's own row.
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, roleID uint) error
	GetByID(ctx context.Context, roleID uint) (*Role, error)
	// List returns one fixed-size page of roles ordered by id descending.
	List(ctx context.Context, page int) ([]*Role, query.PageMeta, error)
}
