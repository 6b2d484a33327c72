package usecases

import (
	"context"
)

// TransactionRunner executes a function inside a database transaction carried
// through the context.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers best-effort notification mail. Implementations must be
// safe for concurrent use; failures are logged by the caller, never
// propagated.
type Notifier interface {
	SendTicketAssignedEmail(to, ticketName string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*TicketResult, int64, error)
}

type AssignedTicketsExecutor interface {
	Execute(ctx context.Context, query AssignedTicketsQuery) ([]*TicketResult, error)
}
