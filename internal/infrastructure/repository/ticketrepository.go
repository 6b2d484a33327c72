package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ticketd/internal/domain/ticket"
	"ticketd/internal/infrastructure/persistence/mappers"
	"ticketd/internal/infrastructure/persistence/models"
	"ticketd/internal/shared/db"
)

type TicketRepository struct {
	db      *gorm.DB
	generic *Generic[models.TicketModel]
	mapper  mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:      gdb,
		generic: NewGeneric[models.TicketModel](gdb, "Ticket"),
		mapper:  mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(t)
	if err := tx.Omit("Fields").Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if fieldIDs := t.FieldIDs(); len(fieldIDs) > 0 {
		if err := r.appendFields(tx, model, fieldIDs); err != nil {
			return err
		}
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket, disconnectFieldIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(t)
	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Select("name", "status", "description", "assigned_to_id", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if fieldIDs := t.FieldIDs(); len(fieldIDs) > 0 {
		if err := r.appendFields(tx, model, fieldIDs); err != nil {
			return err
		}
	}

	if len(disconnectFieldIDs) > 0 {
		detach := make([]models.FieldModel, 0, len(disconnectFieldIDs))
		for _, id := range disconnectFieldIDs {
			detach = append(detach, models.FieldModel{ID: id})
		}
		if err := tx.Model(model).Association("Fields").Delete(detach); err != nil {
			return fmt.Errorf("failed to disconnect ticket fields: %w", err)
		}
	}

	return nil
}

// appendFields links the given fields to the ticket. gorm's Append upserts
// join rows, so relinking an already-connected field is a no-op.
func (r *TicketRepository) appendFields(tx *gorm.DB, model *models.TicketModel, fieldIDs []uint) error {
	attach := make([]models.FieldModel, 0, len(fieldIDs))
	for _, id := range fieldIDs {
		attach = append(attach, models.FieldModel{ID: id})
	}
	if err := tx.Model(model).Omit("Fields.*").Association("Fields").Append(attach); err != nil {
		return fmt.Errorf("failed to connect ticket fields: %w", err)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	return r.generic.DeleteByID(ctx, ticketID)
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	model, err := r.generic.FindByID(ctx, ticketID, "Fields")
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	queryDB := tx.Model(&models.TicketModel{})
	if filter.Name != "" {
		queryDB = queryDB.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Status != "" {
		queryDB = queryDB.Where("LOWER(status) = ?", strings.ToLower(filter.Status))
	}

	var total int64
	if err := queryDB.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	order := "id ASC"
	if filter.SortDesc {
		order = "id DESC"
	}

	var records []models.TicketModel
	if err := queryDB.Preload("Fields").Order(order).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(records)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListAssignedTo(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var records []models.TicketModel
	err := tx.Preload("Fields").
		Where("assigned_to_id = ?", userID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned tickets: %w", err)
	}

	return r.toDomainList(records)
}

func (r *TicketRepository) toDomainList(records []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(records))
	for i := range records {
		t, err := r.mapper.ToDomain(&records[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
