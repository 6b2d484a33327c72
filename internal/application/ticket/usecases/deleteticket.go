package usecases

import (
	"context"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	Actor    ticket.Actor
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !ticket.CanMutate(t, cmd.Actor) {
		uc.logger.Warnw("ticket delete denied", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
		return errors.NewForbiddenError("you do not have access to this ticket")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
