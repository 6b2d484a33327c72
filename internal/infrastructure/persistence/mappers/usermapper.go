package mappers

import (
	"ticketd/internal/domain/user"
	"ticketd/internal/infrastructure/persistence/models"
	"ticketd/internal/shared/authorization"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		Password:  u.PasswordHash(),
		RoleID:    uint(u.RoleID()),
		CreatedAt: u.CreatedAt().UnixMilli(),
		UpdatedAt: u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.Email,
		model.Password,
		authorization.RoleID(model.RoleID),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
