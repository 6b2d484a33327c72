package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	"ticketd/internal/domain/user"
	"ticketd/internal/shared/authorization"
	"ticketd/internal/shared/errors"
)

func reconstructTestTicket(t *testing.T, id uint, assigneeID uint, fields []*field.Field) *ticket.Ticket {
	tk, err := ticket.ReconstructTicket(id, "Broken search", "open", "results are stale", assigneeID, nil, fields, time.Now(), time.Now())
	require.NoError(t, err)
	return tk
}

func TestUpdateTicketUseCase_Execute_Forbidden(t *testing.T) {
	owner := uint(1)
	stranger := ticket.Actor{ID: 2, RoleID: 5}

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, ticketID, owner, nil), nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockFieldRepository{}, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{TicketID: 7, Actor: stranger})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateTicketUseCase_Execute_AdminMayUpdateForeignTicket(t *testing.T) {
	owner := uint(1)
	admin := ticket.Actor{ID: 99, RoleID: authorization.RoleIDAdmin}

	updateCalled := false
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, ticketID, owner, nil), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket, disconnectFieldIDs []uint) error {
			updateCalled = true
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockFieldRepository{}, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	name := "Renamed by admin"
	result, err := useCase.Execute(context.Background(), UpdateTicketCommand{TicketID: 7, Name: &name, Actor: admin})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, updateCalled)
}

func TestUpdateTicketUseCase_Execute_SelfAssignmentRejected(t *testing.T) {
	owner := uint(1)
	admin := ticket.Actor{ID: 99, RoleID: authorization.RoleIDAdmin}

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, ticketID, owner, nil), nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockFieldRepository{}, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	// even an admin cannot delegate a ticket to themselves
	self := admin.ID
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:     7,
		AssignedToID: &self,
		Actor:        admin,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeBadRequest, appErr.Type)
}

func TestUpdateTicketUseCase_Execute_MissingTicket(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("Ticket not found")
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockFieldRepository{}, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{TicketID: 404, Actor: ticket.Actor{ID: 1}})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTicketUseCase_Execute_FieldReconciliation(t *testing.T) {
	owner := uint(1)
	current := []*field.Field{
		reconstructTestField(t, 1, "one", "text"),
		reconstructTestField(t, 2, "two", "text"),
		reconstructTestField(t, 3, "three", "text"),
	}

	var gotDisconnect []uint
	var gotConnected []uint
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, ticketID, owner, current), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket, disconnectFieldIDs []uint) error {
			gotDisconnect = disconnectFieldIDs
			gotConnected = tkt.FieldIDs()
			return nil
		},
	}
	mockFields := &mockFieldRepository{
		GetByIDFunc: func(ctx context.Context, fieldID uint) (*field.Field, error) {
			return reconstructTestField(t, fieldID, "kept", "text"), nil
		},
		SaveFunc: func(ctx context.Context, f *field.Field) error {
			return f.SetID(4)
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockFields, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	// desired set: keep 2, create a new descriptor (becomes 4); 1 and 3 go
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 7,
		Fields:   []field.Ref{field.RefByID(2), field.RefByDescriptor("fresh", "text")},
		Actor:    ticket.Actor{ID: owner},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 3}, gotDisconnect)
	assert.ElementsMatch(t, []uint{2, 4}, gotConnected)
}

func TestUpdateTicketUseCase_Execute_NilFieldsLeavesLinksAlone(t *testing.T) {
	owner := uint(1)
	current := []*field.Field{reconstructTestField(t, 1, "one", "text")}

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, ticketID, owner, current), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket, disconnectFieldIDs []uint) error {
			assert.Empty(t, disconnectFieldIDs)
			assert.Equal(t, []uint{1}, tkt.FieldIDs())
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockFieldRepository{}, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	status := "closed"
	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 7,
		Status:   &status,
		Actor:    ticket.Actor{ID: owner},
	})
	require.NoError(t, err)
}

func TestUpdateTicketUseCase_Execute_ResolveFailureChangesNothing(t *testing.T) {
	owner := uint(1)

	updateCalled := false
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return reconstructTestTicket(t, ticketID, owner, nil), nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket, disconnectFieldIDs []uint) error {
			updateCalled = true
			return nil
		},
	}
	mockFields := &mockFieldRepository{
		GetByIDFunc: func(ctx context.Context, fieldID uint) (*field.Field, error) {
			return nil, errors.NewNotFoundError("Field not found")
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, mockFields, &mockUserRepository{}, &mockTransactionRunner{}, &mockNotifier{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID: 7,
		Fields:   []field.Ref{field.RefByID(42)},
		Actor:    ticket.Actor{ID: owner},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, updateCalled)
}

func TestUpdateTicketUseCase_Execute_DelegationSendsEmail(t *testing.T) {
	owner := uint(1)
	delegate := uint(2)

	delegateUser, err := user.ReconstructUser(delegate, "sam", "sam@example.com", "hash", 3, time.Now(), time.Now())
	require.NoError(t, err)

	// one shared instance so the post-update reload observes the delegation
	tk := reconstructTestTicket(t, 7, owner, nil)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID uint) (*user.User, error) {
			return delegateUser, nil
		},
	}

	var wg sync.WaitGroup
	wg.Add(1)
	var sentTo string
	notifier := &mockNotifier{
		SendTicketAssignedEmailFunc: func(to, ticketName string) error {
			sentTo = to
			wg.Done()
			return nil
		},
	}

	useCase := NewUpdateTicketUseCase(mockRepo, &mockFieldRepository{}, mockUsers, &mockTransactionRunner{}, notifier, &mockLogger{})

	_, err = useCase.Execute(context.Background(), UpdateTicketCommand{
		TicketID:     7,
		AssignedToID: &delegate,
		Actor:        ticket.Actor{ID: owner},
	})
	require.NoError(t, err)

	wg.Wait()
	assert.Equal(t, "sam@example.com", sentTo)
}
