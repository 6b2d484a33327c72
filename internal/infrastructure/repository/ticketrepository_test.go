package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	apperrors "ticketd/internal/shared/errors"
)

func createTestFields(t *testing.T, gdb *gorm.DB, names ...string) []*field.Field {
	repo := NewFieldRepository(gdb)
	fields := make([]*field.Field, 0, len(names))
	for _, name := range names {
		f, err := field.NewField(name, "text")
		require.NoError(t, err)
		require.NoError(t, repo.Save(context.Background(), f))
		fields = append(fields, f)
	}
	return fields
}

func createTestTicket(t *testing.T, name, status string, assigneeID uint, fields []*field.Field) *ticket.Ticket {
	tk, err := ticket.NewTicket(name, status, "test description", assigneeID, nil)
	require.NoError(t, err)
	tk.ReplaceFields(fields)
	return tk
}

func fieldNames(tk *ticket.Ticket) []string {
	names := make([]string, 0, len(tk.Fields()))
	for _, f := range tk.Fields() {
		names = append(names, f.Name())
	}
	return names
}

func TestTicketRepository_Save(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	t.Run("saves ticket with its field set", func(t *testing.T) {
		fields := createTestFields(t, gdb, "severity", "browser")
		tk := createTestTicket(t, "Login broken", "open", 1, fields)

		err := repo.Save(ctx, tk)
		require.NoError(t, err)
		require.NotZero(t, tk.ID())

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "Login broken", found.Name())
		assert.ElementsMatch(t, []string{"severity", "browser"}, fieldNames(found))
	})

	t.Run("saves ticket without fields", func(t *testing.T) {
		tk := createTestTicket(t, "No fields", "open", 1, nil)

		err := repo.Save(ctx, tk)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Empty(t, found.Fields())
	})
}

func TestTicketRepository_Update(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	fields := createTestFields(t, gdb, "one", "two", "three", "four")

	t.Run("connects new fields and disconnects dropped ones", func(t *testing.T) {
		tk := createTestTicket(t, "Reconcile", "open", 1, fields[:3])
		require.NoError(t, repo.Save(ctx, tk))

		// desired set {two, four}: keep two, add four, drop one and three
		tk.ReplaceFields([]*field.Field{fields[1], fields[3]})
		err := repo.Update(ctx, tk, []uint{fields[0].ID(), fields[2].ID()})
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"two", "four"}, fieldNames(found))
	})

	t.Run("reconnecting a linked field is a no-op", func(t *testing.T) {
		tk := createTestTicket(t, "Idempotent", "open", 1, fields[:1])
		require.NoError(t, repo.Save(ctx, tk))

		err := repo.Update(ctx, tk, nil)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Len(t, found.Fields(), 1)
	})

	t.Run("updates scalar columns", func(t *testing.T) {
		tk := createTestTicket(t, "Before", "open", 1, nil)
		require.NoError(t, repo.Save(ctx, tk))

		name := "After"
		status := "closed"
		require.NoError(t, tk.UpdateDetails(&name, &status, nil))
		assignee := uint(7)
		require.NoError(t, tk.Delegate(&assignee))

		require.NoError(t, repo.Update(ctx, tk, nil))

		found, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "After", found.Name())
		assert.Equal(t, "closed", found.Status())
		require.NotNil(t, found.AssignedToID())
		assert.Equal(t, uint(7), *found.AssignedToID())
	})
}

func TestTicketRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	fieldRepo := NewFieldRepository(gdb)
	ctx := context.Background()

	t.Run("deleting a ticket keeps its fields", func(t *testing.T) {
		fields := createTestFields(t, gdb, "survivor")
		tk := createTestTicket(t, "Doomed", "open", 1, fields)
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, repo.Delete(ctx, tk.ID()))

		_, err := repo.GetByID(ctx, tk.ID())
		assert.True(t, apperrors.IsNotFoundError(err))

		f, err := fieldRepo.GetByID(ctx, fields[0].ID())
		require.NoError(t, err)
		assert.Equal(t, "survivor", f.Name())
	})

	t.Run("missing ticket is not found", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestTicketRepository_List(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	seed := []struct {
		name   string
		status string
	}{
		{"Payment gateway timeout", "open"},
		{"Payment page typo", "closed"},
		{"Search index stale", "open"},
	}
	for _, s := range seed {
		tk := createTestTicket(t, s.name, s.status, 1, nil)
		require.NoError(t, repo.Save(ctx, tk))
	}

	t.Run("no filter returns everything ascending", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, tickets, 3)
		assert.Equal(t, "Payment gateway timeout", tickets[0].Name())
	})

	t.Run("name filter matches substring case-insensitively", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{Name: "PAYMENT"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("status filter matches equality case-insensitively", func(t *testing.T) {
		tickets, _, err := repo.List(ctx, ticket.ListFilter{Status: "Closed"})
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Payment page typo", tickets[0].Name())
	})

	t.Run("filters combine", func(t *testing.T) {
		tickets, _, err := repo.List(ctx, ticket.ListFilter{Name: "payment", Status: "open"})
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "Payment gateway timeout", tickets[0].Name())
	})

	t.Run("descending sort reverses the order", func(t *testing.T) {
		tickets, _, err := repo.List(ctx, ticket.ListFilter{SortDesc: true})
		require.NoError(t, err)
		require.Len(t, tickets, 3)
		assert.Equal(t, "Search index stale", tickets[0].Name())
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.ListFilter{Name: "nonexistent"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, tickets)
	})
}

func TestTicketRepository_ListAssignedTo(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	ctx := context.Background()

	assignedTo := uint(5)
	mine, err := ticket.NewTicket("Mine", "open", "", 1, &assignedTo)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, mine))

	other := createTestTicket(t, "Someone else's", "open", 1, nil)
	require.NoError(t, repo.Save(ctx, other))

	tickets, err := repo.ListAssignedTo(ctx, assignedTo)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Mine", tickets[0].Name())

	tickets, err = repo.ListAssignedTo(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
