package usecases

import (
	"context"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/shared/constants"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
)

type ListTicketsQuery struct {
	// Name filters by case-insensitive substring match. Empty disables.
	Name string
	// Status filters by case-insensitive equality. Empty disables.
	Status string
	// Sort orders by id: "asc", "desc", or empty for ascending. Anything
	// else is rejected.
	Sort string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*TicketResult, int64, error) {
	var sortDesc bool
	switch query.Sort {
	case "", constants.SortAsc:
		sortDesc = false
	case constants.SortDesc:
		sortDesc = true
	default:
		return nil, 0, errors.NewBadRequestError("sort must be \"asc\" or \"desc\"")
	}

	tickets, total, err := uc.ticketRepo.List(ctx, ticket.ListFilter{
		Name:     query.Name,
		Status:   query.Status,
		SortDesc: sortDesc,
	})
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, err
	}

	return ticketsToResults(tickets), total, nil
}
