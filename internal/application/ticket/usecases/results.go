package usecases

import (
	"time"

	"ticketd/internal/domain/ticket"
)

// FieldResult is the outward shape of a field attached to a ticket.
type FieldResult struct {
	ID        uint      `json:"id"`
	FieldName string    `json:"fieldName"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TicketResult is the outward shape of a ticket.
type TicketResult struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	Status       string        `json:"status"`
	Description  string        `json:"description"`
	AssigneeID   uint          `json:"assigneeId"`
	AssignedToID *uint         `json:"assignedToId"`
	Fields       []FieldResult `json:"fields"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func ticketToResult(t *ticket.Ticket) *TicketResult {
	fields := make([]FieldResult, 0, len(t.Fields()))
	for _, f := range t.Fields() {
		fields = append(fields, FieldResult{
			ID:        f.ID(),
			FieldName: f.Name(),
			Type:      f.Type(),
			CreatedAt: f.CreatedAt(),
			UpdatedAt: f.UpdatedAt(),
		})
	}

	return &TicketResult{
		ID:           t.ID(),
		Name:         t.Name(),
		Status:       t.Status(),
		Description:  t.Description(),
		AssigneeID:   t.AssigneeID(),
		AssignedToID: t.AssignedToID(),
		Fields:       fields,
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func ticketsToResults(tickets []*ticket.Ticket) []*TicketResult {
	results := make([]*TicketResult, 0, len(tickets))
	for _, t := range tickets {
		results = append(results, ticketToResult(t))
	}
	return results
}
