package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ticketd/internal/domain/user"
	"ticketd/internal/infrastructure/persistence/mappers"
	"ticketd/internal/infrastructure/persistence/models"
	"ticketd/internal/shared/db"
	"ticketd/internal/shared/query"
)

type UserRepository struct {
	db      *gorm.DB
	generic *Generic[models.UserModel]
	mapper  mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:      gdb,
		generic: NewGeneric[models.UserModel](gdb, "User"),
		mapper:  mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	if err := r.generic.Create(ctx, model, map[string]any{"email": u.Email()}); err != nil {
		return err
	}
	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	_, err := r.generic.Update(ctx, u.ID(), model, map[string]any{"email": u.Email()})
	return err
}

func (r *UserRepository) Delete(ctx context.Context, userID uint) error {
	return r.generic.DeleteByID(ctx, userID)
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	model, err := r.generic.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	err := tx.Where("email = ?", strings.ToLower(email)).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) Exists(ctx context.Context, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) List(ctx context.Context, page int) ([]*user.User, query.PageMeta, error) {
	records, meta, err := r.generic.FindAll(ctx, page, "id DESC")
	if err != nil {
		return nil, query.PageMeta{}, err
	}

	users := make([]*user.User, 0, len(records))
	for i := range records {
		u, err := r.mapper.ToDomain(&records[i])
		if err != nil {
			return nil, query.PageMeta{}, err
		}
		users = append(users, u)
	}

	return users, meta, nil
}
