package usecases

import (
	"context"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	"ticketd/internal/domain/user"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/goroutine"
	"ticketd/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID     uint
	Name         *string
	Status       *string
	Description  *string
	AssignedToID *uint
	// Fields is the desired field set. Nil leaves the links untouched; an
	// empty list disconnects everything.
	Fields []field.Ref
	Actor  ticket.Actor
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	resolver   *fieldResolver
	tx         TransactionRunner
	notifier   Notifier
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	fieldRepo field.Repository,
	userRepo user.Repository,
	tx TransactionRunner,
	notifier Notifier,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		resolver:   newFieldResolver(fieldRepo),
		tx:         tx,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*TicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	current, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !ticket.CanMutate(current, cmd.Actor) {
		uc.logger.Warnw("ticket update denied", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	if cmd.AssignedToID != nil {
		if err := validateAssignment(ctx, uc.userRepo, cmd.AssignedToID, cmd.Actor.ID); err != nil {
			uc.logger.Warnw("invalid ticket assignment", "error", err)
			return nil, err
		}
	}

	previousAssignedTo := current.AssignedToID()

	if err := current.UpdateDetails(cmd.Name, cmd.Status, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AssignedToID != nil {
		if err := current.Delegate(cmd.AssignedToID); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var disconnectIDs []uint

		if cmd.Fields != nil {
			desired, err := uc.resolver.Resolve(ctx, cmd.Fields)
			if err != nil {
				return err
			}

			currentIDs := current.FieldIDs()
			current.ReplaceFields(desired)
			disconnectIDs = disconnectDelta(currentIDs, current.FieldIDs())
		}

		return uc.ticketRepo.Update(ctx, current, disconnectIDs)
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	updated, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	uc.notifyAssignment(ctx, updated, previousAssignedTo)

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return ticketToResult(updated), nil
}

// notifyAssignment mails the newly delegated user on a recovered goroutine.
// Delivery failures are logged and never surface to the caller.
func (uc *UpdateTicketUseCase) notifyAssignment(ctx context.Context, t *ticket.Ticket, previous *uint) {
	assignedTo := t.AssignedToID()
	if assignedTo == nil {
		return
	}
	if previous != nil && *previous == *assignedTo {
		return
	}

	recipient, err := uc.userRepo.GetByID(ctx, *assignedTo)
	if err != nil {
		uc.logger.Warnw("failed to load assignment recipient", "user_id", *assignedTo, "error", err)
		return
	}

	email := recipient.Email()
	name := t.Name()
	goroutine.SafeGo(uc.logger, "ticket-assigned-email", func() {
		if err := uc.notifier.SendTicketAssignedEmail(email, name); err != nil {
			uc.logger.Warnw("failed to send assignment email", "to", email, "error", err)
		}
	})
}
