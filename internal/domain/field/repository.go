package field

import (
	"context"

	"ticketd/internal/shared/query"
)

type Repository interface {
	// Save persists a new field. A field with the same name must not exist.
	Save(ctx context.Context, field *Field) error
	// Update persists changes. The name uniqueness check ignores the field's
	// own row.
	Update(ctx context.Context, field *Field) error
	Delete(ctx context.Context, fieldID uint) error
	GetByID(ctx context.Context, fieldID uint) (*Field, error)
	// GetByName returns nil without error when no field carries the name.
	GetByName(ctx context.Context, name string) (*Field, error)
	// List returns one fixed-size page of fields ordered by id descending.
	List(ctx context.Context, page int) ([]*Field, query.PageMeta, error)
}
