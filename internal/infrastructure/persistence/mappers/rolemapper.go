package mappers

import (
	"ticketd/internal/domain/role"
	"ticketd/internal/infrastructure/persistence/models"
)

// RoleMapper handles the conversion between Role domain entities and persistence models.
type RoleMapper interface {
	ToModel(r *role.Role) *models.RoleModel
	ToDomain(model *models.RoleModel) (*role.Role, error)
}

type RoleMapperImpl struct{}

func NewRoleMapper() RoleMapper {
	return &RoleMapperImpl{}
}

func (m *RoleMapperImpl) ToModel(r *role.Role) *models.RoleModel {
	return &models.RoleModel{
		ID:              r.ID(),
		RoleName:        r.Name(),
		RoleDescription: r.Description(),
		CreatedAt:       r.CreatedAt().UnixMilli(),
		UpdatedAt:       r.UpdatedAt().UnixMilli(),
	}
}

func (m *RoleMapperImpl) ToDomain(model *models.RoleModel) (*role.Role, error) {
	return role.ReconstructRole(
		model.ID,
		model.RoleName,
		model.RoleDescription,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
