package usecases

import (
	"context"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	Actor    ticket.Actor
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !ticket.CanAccess(t, query.Actor) {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "actor_id", query.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return ticketToResult(t), nil
}
