package usecases

import (
	"context"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	"ticketd/internal/domain/user"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
)

type CreateTicketCommand struct {
	Name         string
	Status       string
	Description  string
	AssignedToID *uint
	Fields       []field.Ref
	Actor        ticket.Actor
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	resolver   *fieldResolver
	tx         TransactionRunner
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	fieldRepo field.Repository,
	userRepo user.Repository,
	tx TransactionRunner,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		resolver:   newFieldResolver(fieldRepo),
		tx:         tx,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*TicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "name", cmd.Name, "actor_id", cmd.Actor.ID)

	if err := validateAssignment(ctx, uc.userRepo, cmd.AssignedToID, cmd.Actor.ID); err != nil {
		uc.logger.Warnw("invalid ticket assignment", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.Name, cmd.Status, cmd.Description, cmd.Actor.ID, cmd.AssignedToID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		fields, err := uc.resolver.Resolve(ctx, cmd.Fields)
		if err != nil {
			return err
		}
		newTicket.ReplaceFields(fields)

		return uc.ticketRepo.Save(ctx, newTicket)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return ticketToResult(newTicket), nil
}

// validateAssignment rejects delegation to the acting user and to users that
// do not exist.
func validateAssignment(ctx context.Context, userRepo user.Repository, assignedToID *uint, actorID uint) error {
	if assignedToID == nil {
		return nil
	}
	if *assignedToID == actorID {
		return errors.NewBadRequestError("ticket cannot be assigned to yourself")
	}

	exists, err := userRepo.Exists(ctx, *assignedToID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("assigned user not found")
	}
	return nil
}
