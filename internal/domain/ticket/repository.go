package ticket

import "context"

// ListFilter narrows and orders the ticket listing. Name matches as a
// case-insensitive substring, Status as a case-insensitive equality; empty
// values disable the respective filter. SortDesc orders by id descending,
// otherwise ascending.
type ListFilter struct {
	Name     string
	Status   string
	SortDesc bool
}

type Repository interface {
	// Save inserts the ticket and connects its field set.
	Save(ctx context.Context, t *Ticket) error
	// Update persists the ticket's scalar fields, connects the ticket's
	// current field set, and disconnects the given field ids. Reconnecting an
	// already-linked field is a no-op.
	Update(ctx context.Context, t *Ticket, disconnectFieldIDs []uint) error
	Delete(ctx context.Context, ticketID uint) error
	// GetByID loads the ticket with its fields.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	// ListAssignedTo returns the tickets delegated to the given user.
	ListAssignedTo(ctx context.Context, userID uint) ([]*Ticket, error)
}
