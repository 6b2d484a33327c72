package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketd/internal/domain/field"
	"ticketd/internal/infrastructure/persistence/mappers"
	"ticketd/internal/infrastructure/persistence/models"
	"ticketd/internal/shared/db"
	"ticketd/internal/shared/query"
)

type FieldRepository struct {
	db      *gorm.DB
	generic *Generic[models.FieldModel]
	mapper  mappers.FieldMapper
}

func NewFieldRepository(gdb *gorm.DB) *FieldRepository {
	return &FieldRepository{
		db:      gdb,
		generic: NewGeneric[models.FieldModel](gdb, "Field"),
		mapper:  mappers.NewFieldMapper(),
	}
}

func (r *FieldRepository) Save(ctx context.Context, f *field.Field) error {
	model := r.mapper.ToModel(f)
	if err := r.generic.Create(ctx, model, map[string]any{"field_name": f.Name()}); err != nil {
		return err
	}
	return f.SetID(model.ID)
}

func (r *FieldRepository) Update(ctx context.Context, f *field.Field) error {
	model := r.mapper.ToModel(f)
	_, err := r.generic.Update(ctx, f.ID(), model, map[string]any{"field_name": f.Name()})
	return err
}

func (r *FieldRepository) Delete(ctx context.Context, fieldID uint) error {
	return r.generic.DeleteByID(ctx, fieldID)
}

func (r *FieldRepository) GetByID(ctx context.Context, fieldID uint) (*field.Field, error) {
	model, err := r.generic.FindByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(model)
}

func (r *FieldRepository) GetByName(ctx context.Context, name string) (*field.Field, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.FieldModel
	err := tx.Where("field_name = ?", name).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find field by name: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FieldRepository) List(ctx context.Context, page int) ([]*field.Field, query.PageMeta, error) {
	records, meta, err := r.generic.FindAll(ctx, page, "id DESC")
	if err != nil {
		return nil, query.PageMeta{}, err
	}

	fields := make([]*field.Field, 0, len(records))
	for i := range records {
		f, err := r.mapper.ToDomain(&records[i])
		if err != nil {
			return nil, query.PageMeta{}, err
		}
		fields = append(fields, f)
	}

	return fields, meta, nil
}
