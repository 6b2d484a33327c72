package mappers

import (
	"fmt"

	"ticketd/internal/domain/field"
	"ticketd/internal/domain/ticket"
	"ticketd/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model. The
	// Fields association is intentionally not populated; the repository
	// manages join rows through explicit connect/disconnect operations.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model, including its loaded
	// Fields association, to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct {
	fieldMapper FieldMapper
}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{fieldMapper: NewFieldMapper()}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		Name:         t.Name(),
		Status:       t.Status(),
		Description:  t.Description(),
		AssigneeID:   t.AssigneeID(),
		AssignedToID: t.AssignedToID(),
		CreatedAt:    t.CreatedAt().UnixMilli(),
		UpdatedAt:    t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	fields := make([]*field.Field, 0, len(model.Fields))
	for i := range model.Fields {
		f, err := m.fieldMapper.ToDomain(&model.Fields[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map field %d of ticket %d: %w", model.Fields[i].ID, model.ID, err)
		}
		fields = append(fields, f)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Name,
		model.Status,
		model.Description,
		model.AssigneeID,
		model.AssignedToID,
		fields,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
