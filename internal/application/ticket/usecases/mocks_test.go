package usecases

import (
	"context"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	"ticketd/internal/domain/user"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/query"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket, disconnectFieldIDs []uint) error
	DeleteFunc         func(ctx context.Context, ticketID uint) error
	GetByIDFunc        func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc           func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error)
	ListAssignedToFunc func(ctx context.Context, userID uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket, disconnectFieldIDs []uint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t, disconnectFieldIDs)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListAssignedTo(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	if m.ListAssignedToFunc != nil {
		return m.ListAssignedToFunc(ctx, userID)
	}
	return nil, nil
}

type mockFieldRepository struct {
	SaveFunc      func(ctx context.Context, f *field.Field) error
	UpdateFunc    func(ctx context.Context, f *field.Field) error
	DeleteFunc    func(ctx context.Context, fieldID uint) error
	GetByIDFunc   func(ctx context.Context, fieldID uint) (*field.Field, error)
	GetByNameFunc func(ctx context.Context, name string) (*field.Field, error)
	ListFunc      func(ctx context.Context, page int) ([]*field.Field, query.PageMeta, error)
}

func (m *mockFieldRepository) Save(ctx context.Context, f *field.Field) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFieldRepository) Update(ctx context.Context, f *field.Field) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFieldRepository) Delete(ctx context.Context, fieldID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, fieldID)
	}
	return nil
}

func (m *mockFieldRepository) GetByID(ctx context.Context, fieldID uint) (*field.Field, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, fieldID)
	}
	return nil, nil
}

func (m *mockFieldRepository) GetByName(ctx context.Context, name string) (*field.Field, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockFieldRepository) List(ctx context.Context, page int) ([]*field.Field, query.PageMeta, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, query.PageMeta{}, nil
}

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *user.User) error
	UpdateFunc     func(ctx context.Context, u *user.User) error
	DeleteFunc     func(ctx context.Context, userID uint) error
	GetByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	ExistsFunc     func(ctx context.Context, userID uint) (bool, error)
	ListFunc       func(ctx context.Context, page int) ([]*user.User, query.PageMeta, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, userID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID)
	}
	return true, nil
}

func (m *mockUserRepository) List(ctx context.Context, page int) ([]*user.User, query.PageMeta, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, page)
	}
	return nil, query.PageMeta{}, nil
}

// mockTransactionRunner runs the function directly; the repositories under
// test are mocks, so there is no real transaction to carry.
type mockTransactionRunner struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactionRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	SendTicketAssignedEmailFunc func(to, ticketName string) error
}

func (m *mockNotifier) SendTicketAssignedEmail(to, ticketName string) error {
	if m.SendTicketAssignedEmailFunc != nil {
		return m.SendTicketAssignedEmailFunc(to, ticketName)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                      {}
func (m *mockLogger) Info(msg string, args ...any)                       {}
func (m *mockLogger) Warn(msg string, args ...any)                       {}
func (m *mockLogger) Error(msg string, args ...any)                      {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) With(args ...any) logger.Interface                  { return m }
func (m *mockLogger) Named(name string) logger.Interface                 { return m }
