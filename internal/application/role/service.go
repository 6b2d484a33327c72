// Package role exposes role CRUD over the generic repository.
package role

import (
	"context"
	"time"

	"ticketd/internal/domain/role"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/query"
)

type RoleResult struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateRoleCommand struct {
	Name        string
	Description string
}

type UpdateRoleCommand struct {
	RoleID      uint
	Name        *string
	Description *string
}

type Service struct {
	roleRepo role.Repository
	logger   logger.Interface
}

func NewService(roleRepo role.Repository, logger logger.Interface) *Service {
	return &Service{roleRepo: roleRepo, logger: logger}
}

func (s *Service) Create(ctx context.Context, cmd CreateRoleCommand) (*RoleResult, error) {
	r, err := role.NewRole(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.roleRepo.Save(ctx, r); err != nil {
		s.logger.Errorw("failed to save role", "name", cmd.Name, "error", err)
		return nil, err
	}

	s.logger.Infow("role created", "role_id", r.ID(), "name", r.Name())
	return toResult(r), nil
}

func (s *Service) Get(ctx context.Context, roleID uint) (*RoleResult, error) {
	r, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return toResult(r), nil
}

func (s *Service) List(ctx context.Context, page int) ([]*RoleResult, query.PageMeta, error) {
	roles, meta, err := s.roleRepo.List(ctx, page)
	if err != nil {
		return nil, query.PageMeta{}, err
	}

	results := make([]*RoleResult, 0, len(roles))
	for _, r := range roles {
		results = append(results, toResult(r))
	}
	return results, meta, nil
}

func (s *Service) Update(ctx context.Context, cmd UpdateRoleCommand) (*RoleResult, error) {
	r, err := s.roleRepo.GetByID(ctx, cmd.RoleID)
	if err != nil {
		return nil, err
	}

	name := r.Name()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	description := r.Description()
	if cmd.Description != nil {
		description = *cmd.Description
	}

	if err := r.Rename(name, description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.roleRepo.Update(ctx, r); err != nil {
		s.logger.Errorw("failed to update role", "role_id", cmd.RoleID, "error", err)
		return nil, err
	}

	s.logger.Infow("role updated", "role_id", cmd.RoleID)
	return toResult(r), nil
}

func (s *Service) Delete(ctx context.Context, roleID uint) error {
	if err := s.roleRepo.Delete(ctx, roleID); err != nil {
		s.logger.Errorw("failed to delete role", "role_id", roleID, "error", err)
		return err
	}

	s.logger.Infow("role deleted", "role_id", roleID)
	return nil
}

func toResult(r *role.Role) *RoleResult {
	return &RoleResult{
		ID:          r.ID(),
		Name:        r.Name(),
		Description: r.Description(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}
