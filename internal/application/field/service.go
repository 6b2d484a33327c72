// Package field exposes field CRUD over the generic repository.
package field

import (
	"context"
	"time"

	"ticketd/internal/domain/field"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/query"
)

type FieldResult struct {
	ID        uint      `json:"id"`
	FieldName string    `json:"fieldName"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateFieldCommand struct {
	FieldName string
	Type      string
}

type UpdateFieldCommand struct {
	FieldID   uint
	FieldName *string
	Type      *string
}

type Service struct {
	fieldRepo field.Repository
	logger    logger.Interface
}

func NewService(fieldRepo field.Repository, logger logger.Interface) *Service {
	return &Service{fieldRepo: fieldRepo, logger: logger}
}

func (s *Service) Create(ctx context.Context, cmd CreateFieldCommand) (*FieldResult, error) {
	f, err := field.NewField(cmd.FieldName, cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.fieldRepo.Save(ctx, f); err != nil {
		s.logger.Errorw("failed to save field", "name", cmd.FieldName, "error", err)
		return nil, err
	}

	s.logger.Infow("field created", "field_id", f.ID(), "name", f.Name())
	return toResult(f), nil
}

func (s *Service) Get(ctx context.Context, fieldID uint) (*FieldResult, error) {
	f, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return toResult(f), nil
}

func (s *Service) List(ctx context.Context, page int) ([]*FieldResult, query.PageMeta, error) {
	fields, meta, err := s.fieldRepo.List(ctx, page)
	if err != nil {
		return nil, query.PageMeta{}, err
	}

	results := make([]*FieldResult, 0, len(fields))
	for _, f := range fields {
		results = append(results, toResult(f))
	}
	return results, meta, nil
}

func (s *Service) Update(ctx context.Context, cmd UpdateFieldCommand) (*FieldResult, error) {
	f, err := s.fieldRepo.GetByID(ctx, cmd.FieldID)
	if err != nil {
		return nil, err
	}

	name := f.Name()
	if cmd.FieldName != nil {
		name = *cmd.FieldName
	}
	fieldType := f.Type()
	if cmd.Type != nil {
		fieldType = *cmd.Type
	}

	if err := f.Redefine(name, fieldType); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.fieldRepo.Update(ctx, f); err != nil {
		s.logger.Errorw("failed to update field", "field_id", cmd.FieldID, "error", err)
		return nil, err
	}

	s.logger.Infow("field updated", "field_id", cmd.FieldID)
	return toResult(f), nil
}

func (s *Service) Delete(ctx context.Context, fieldID uint) error {
	if err := s.fieldRepo.Delete(ctx, fieldID); err != nil {
		s.logger.Errorw("failed to delete field", "field_id", fieldID, "error", err)
		return err
	}

	s.logger.Infow("field deleted", "field_id", fieldID)
	return nil
}

func toResult(f *field.Field) *FieldResult {
	return &FieldResult{
		ID:        f.ID(),
		FieldName: f.Name(),
		Type:      f.Type(),
		CreatedAt: f.CreatedAt(),
		UpdatedAt: f.UpdatedAt(),
	}
}
