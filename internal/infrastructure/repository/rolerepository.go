package repository

import (
	"context"

	"gorm.io/gorm"

	"ticketd/internal/domain/role"
	"ticketd/internal/infrastructure/persistence/mappers"
	"ticketd/internal/infrastructure/persistence/models"
	"ticketd/internal/shared/query"
)

type RoleRepository struct {
	generic *Generic[models.RoleModel]
	mapper  mappers.RoleMapper
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{
		generic: NewGeneric[models.RoleModel](db, "Role"),
		mapper:  mappers.NewRoleMapper(),
	}
}

func (r *RoleRepository) Save(ctx context.Context, rl *role.Role) error {
	model := r.mapper.ToModel(rl)
	if err := r.generic.Create(ctx, model, map[string]any{"role_name": rl.Name()}); err != nil {
		return err
	}
	return rl.SetID(model.ID)
}

func (r *RoleRepository) Update(ctx context.Context, rl *role.Role) error {
	model := r.mapper.ToModel(rl)
	_, err := r.generic.Update(ctx, rl.ID(), model, map[string]any{"role_name": rl.Name()})
	return err
}

func (r *RoleRepository) Delete(ctx context.Context, roleID uint) error {
	return r.generic.DeleteByID(ctx, roleID)
}

func (r *RoleRepository) GetByID(ctx context.Context, roleID uint) (*role.Role, error) {
	model, err := r.generic.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(model)
}

func (r *RoleRepository) List(ctx context.Context, page int) ([]*role.Role, query.PageMeta, error) {
	records, meta, err := r.generic.FindAll(ctx, page, "id DESC")
	if err != nil {
		return nil, query.PageMeta{}, err
	}

	roles := make([]*role.Role, 0, len(records))
	for i := range records {
		rl, err := r.mapper.ToDomain(&records[i])
		if err != nil {
			return nil, query.PageMeta{}, err
		}
		roles = append(roles, rl)
	}

	return roles, meta, nil
}
