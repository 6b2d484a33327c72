package mappers

import (
	"ticketd/internal/domain/field"
	"ticketd/internal/infrastructure/persistence/models"
)

// FieldMapper handles the conversion between Field domain entities and persistence models.
type FieldMapper interface {
	ToModel(f *field.Field) *models.FieldModel
	ToDomain(model *models.FieldModel) (*field.Field, error)
}

type FieldMapperImpl struct{}

func NewFieldMapper() FieldMapper {
	return &FieldMapperImpl{}
}

func (m *FieldMapperImpl) ToModel(f *field.Field) *models.FieldModel {
	return &models.FieldModel{
		ID:        f.ID(),
		FieldName: f.Name(),
		Type:      f.Type(),
		CreatedAt: f.CreatedAt().UnixMilli(),
		UpdatedAt: f.UpdatedAt().UnixMilli(),
	}
}

func (m *FieldMapperImpl) ToDomain(model *models.FieldModel) (*field.Field, error) {
	return field.ReconstructField(
		model.ID,
		model.FieldName,
		model.Type,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
