package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	"ticketd/internal/shared/authorization"
	"ticketd/internal/shared/errors"
)

func reconstructTestField(t *testing.T, id uint, name, fieldType string) *field.Field {
	f, err := field.ReconstructField(id, name, fieldType, time.Now(), time.Now())
	require.NoError(t, err)
	return f
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	assignedTo := uint(2)

	tests := []struct {
		name    string
		command CreateTicketCommand
	}{
		{
			name: "create ticket without delegation",
			command: CreateTicketCommand{
				Name:        "System crashes on login",
				Status:      "open",
				Description: "Users experiencing crashes when attempting to login",
				Actor:       ticket.Actor{ID: 1},
			},
		},
		{
			name: "create delegated ticket with field references",
			command: CreateTicketCommand{
				Name:         "Invoice clarification needed",
				Status:       "open",
				AssignedToID: &assignedTo,
				Fields:       []field.Ref{field.RefByID(10)},
				Actor:        ticket.Actor{ID: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var savedTicket *ticket.Ticket
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					require.NoError(t, tkt.SetID(100))
					savedTicket = tkt
					return nil
				},
			}
			mockFields := &mockFieldRepository{
				GetByIDFunc: func(ctx context.Context, fieldID uint) (*field.Field, error) {
					return reconstructTestField(t, fieldID, "severity", "text"), nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, mockFields, &mockUserRepository{}, &mockTransactionRunner{}, &mockLogger{})

			result, err := useCase.Execute(context.Background(), tt.command)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(100), result.ID)
			assert.Equal(t, tt.command.Name, result.Name)
			assert.Equal(t, tt.command.Actor.ID, savedTicket.AssigneeID())
			assert.Len(t, savedTicket.Fields(), len(tt.command.Fields))
		})
	}
}

func TestCreateTicketUseCase_Execute_AssignmentValidation(t *testing.T) {
	self := uint(1)
	missing := uint(99)

	tests := []struct {
		name       string
		command    CreateTicketCommand
		userExists bool
		wantCheck  func(t *testing.T, err error)
	}{
		{
			name: "assigning to yourself is a bad request",
			command: CreateTicketCommand{
				Name:         "Self assignment",
				Status:       "open",
				AssignedToID: &self,
				Actor:        ticket.Actor{ID: 1},
			},
			userExists: true,
			wantCheck: func(t *testing.T, err error) {
				assert.True(t, errors.IsBadRequestError(err))
			},
		},
		{
			name: "assigning to a missing user is not found",
			command: CreateTicketCommand{
				Name:         "Ghost assignment",
				Status:       "open",
				AssignedToID: &missing,
				Actor:        ticket.Actor{ID: 1},
			},
			userExists: false,
			wantCheck: func(t *testing.T, err error) {
				assert.True(t, errors.IsNotFoundError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveCalled := false
			mockRepo := &mockTicketRepository{
				SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
					saveCalled = true
					return nil
				},
			}
			mockUsers := &mockUserRepository{
				ExistsFunc: func(ctx context.Context, userID uint) (bool, error) {
					return tt.userExists, nil
				},
			}

			useCase := NewCreateTicketUseCase(mockRepo, &mockFieldRepository{}, mockUsers, &mockTransactionRunner{}, &mockLogger{})

			_, err := useCase.Execute(context.Background(), tt.command)
			require.Error(t, err)
			tt.wantCheck(t, err)
			assert.False(t, saveCalled)
		})
	}
}

func TestCreateTicketUseCase_Execute_InvalidEntity(t *testing.T) {
	useCase := NewCreateTicketUseCase(&mockTicketRepository{}, &mockFieldRepository{}, &mockUserRepository{}, &mockTransactionRunner{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Name:   "",
		Status: "open",
		Actor:  ticket.Actor{ID: 1, RoleID: authorization.RoleIDAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateTicketUseCase_Execute_DescriptorConflictCreatesNothing(t *testing.T) {
	existing := reconstructTestField(t, 5, "severity", "text")

	saveCalled := false
	mockRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			saveCalled = true
			return nil
		},
	}
	fieldCreated := false
	mockFields := &mockFieldRepository{
		GetByNameFunc: func(ctx context.Context, name string) (*field.Field, error) {
			if name == existing.Name() {
				return existing, nil
			}
			return nil, nil
		},
		SaveFunc: func(ctx context.Context, f *field.Field) error {
			fieldCreated = true
			return nil
		},
	}

	useCase := NewCreateTicketUseCase(mockRepo, mockFields, &mockUserRepository{}, &mockTransactionRunner{}, &mockLogger{})

	_, err := useCase.Execute(context.Background(), CreateTicketCommand{
		Name:   "Conflicting fields",
		Status: "open",
		Fields: []field.Ref{
			field.RefByDescriptor("priority", "text"),
			field.RefByDescriptor("severity", "text"),
		},
		Actor: ticket.Actor{ID: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.False(t, fieldCreated, "no descriptor may be created when any element conflicts")
	assert.False(t, saveCalled)
}
