package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/shared/errors"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	owner := uint(1)

	var gotFilter ticket.ListFilter
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
			gotFilter = filter
			return []*ticket.Ticket{reconstructTestTicket(t, 1, owner, nil)}, 1, nil
		},
	}
	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})

	t.Run("passes filters through", func(t *testing.T) {
		results, total, err := useCase.Execute(context.Background(), ListTicketsQuery{
			Name:   "search",
			Status: "open",
			Sort:   "desc",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, results, 1)
		assert.Equal(t, "search", gotFilter.Name)
		assert.Equal(t, "open", gotFilter.Status)
		assert.True(t, gotFilter.SortDesc)
	})

	t.Run("empty sort means ascending", func(t *testing.T) {
		_, _, err := useCase.Execute(context.Background(), ListTicketsQuery{})
		require.NoError(t, err)
		assert.False(t, gotFilter.SortDesc)
	})

	t.Run("unknown sort direction is a bad request", func(t *testing.T) {
		_, _, err := useCase.Execute(context.Background(), ListTicketsQuery{Sort: "sideways"})
		require.Error(t, err)
		assert.True(t, errors.IsBadRequestError(err))
	})
}

func TestAssignedTicketsUseCase_Execute(t *testing.T) {
	owner := uint(1)

	mockRepo := &mockTicketRepository{
		ListAssignedToFunc: func(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
			if userID != 5 {
				return nil, nil
			}
			return []*ticket.Ticket{reconstructTestTicket(t, 1, owner, nil)}, nil
		},
	}
	useCase := NewAssignedTicketsUseCase(mockRepo, &mockLogger{})

	results, err := useCase.Execute(context.Background(), AssignedTicketsQuery{UserID: 5})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = useCase.Execute(context.Background(), AssignedTicketsQuery{UserID: 6})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	owner := uint(1)

	t.Run("owner deletes own ticket", func(t *testing.T) {
		deleted := false
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return reconstructTestTicket(t, ticketID, owner, nil), nil
			},
			DeleteFunc: func(ctx context.Context, ticketID uint) error {
				deleted = true
				return nil
			},
		}
		useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

		err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 7, Actor: ticket.Actor{ID: owner}})
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return reconstructTestTicket(t, ticketID, owner, nil), nil
			},
		}
		useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

		err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 7, Actor: ticket.Actor{ID: 99, RoleID: 3}})
		require.Error(t, err)
		assert.True(t, errors.IsForbiddenError(err))
	})
}
