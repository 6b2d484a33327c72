package usecases

import (
	"context"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/shared/logger"
)

type AssignedTicketsQuery struct {
	UserID uint
}

type AssignedTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAssignedTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AssignedTicketsUseCase {
	return &AssignedTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AssignedTicketsUseCase) Execute(ctx context.Context, query AssignedTicketsQuery) ([]*TicketResult, error) {
	tickets, err := uc.ticketRepo.ListAssignedTo(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list assigned tickets", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return ticketsToResults(tickets), nil
}
