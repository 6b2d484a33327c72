package ticket

import (
	"ticketd/internal/application/ticket/usecases"
	domticket "ticketd/internal/domain/ticket"

	"ticketd/internal/domain/field"
)

// CreateTicketRequest is the create payload. Fields accepts a mixed list of
// existing field ids and new-field descriptors.
type CreateTicketRequest struct {
	Name         string      `json:"name" binding:"required,max=200"`
	Status       string      `json:"status" binding:"required,max=50"`
	Description  string      `json:"description" binding:"max=5000"`
	AssignedToID *uint       `json:"assignedToId,omitempty"`
	Fields       []field.Ref `json:"fields,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(actor domticket.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Name:         r.Name,
		Status:       r.Status,
		Description:  r.Description,
		AssignedToID: r.AssignedToID,
		Fields:       r.Fields,
		Actor:        actor,
	}
}

// UpdateTicketRequest carries partial updates; absent members leave the
// ticket untouched. A present empty fields list disconnects every field.
type UpdateTicketRequest struct {
	Name         *string     `json:"name,omitempty" binding:"omitempty,max=200"`
	Status       *string     `json:"status,omitempty" binding:"omitempty,max=50"`
	Description  *string     `json:"description,omitempty" binding:"omitempty,max=5000"`
	AssignedToID *uint       `json:"assignedToId,omitempty"`
	Fields       []field.Ref `json:"fields,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint, actor domticket.Actor) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:     ticketID,
		Name:         r.Name,
		Status:       r.Status,
		Description:  r.Description,
		AssignedToID: r.AssignedToID,
		Fields:       r.Fields,
		Actor:        actor,
	}
}
