// Package user exposes the thin user management service over the generic
// repository.
package user

import (
	"context"
	"time"

	"ticketd/internal/domain/user"
	"ticketd/internal/shared/authorization"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/logger"
	"ticketd/internal/shared/query"
)

// UserResult is the outward shape of a user. The password hash never leaves
// the application layer.
type UserResult struct {
	ID        uint                 `json:"id"`
	Username  string               `json:"username"`
	Email     string               `json:"email"`
	RoleID    authorization.RoleID `json:"roleId"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type UpdateProfileCommand struct {
	UserID   uint
	Username *string
	Email    *string
}

type Service struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewService(userRepo user.Repository, logger logger.Interface) *Service {
	return &Service{userRepo: userRepo, logger: logger}
}

func (s *Service) List(ctx context.Context, page int) ([]*UserResult, query.PageMeta, error) {
	users, meta, err := s.userRepo.List(ctx, page)
	if err != nil {
		return nil, query.PageMeta{}, err
	}

	results := make([]*UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, toResult(u))
	}
	return results, meta, nil
}

func (s *Service) Get(ctx context.Context, userID uint) (*UserResult, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResult(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, cmd UpdateProfileCommand) (*UserResult, error) {
	u, err := s.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	username := u.Username()
	if cmd.Username != nil {
		username = *cmd.Username
	}
	email := u.Email()
	if cmd.Email != nil {
		email = *cmd.Email
	}

	if err := u.UpdateProfile(username, email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		s.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	s.logger.Infow("user updated", "user_id", cmd.UserID)
	return toResult(u), nil
}

func (s *Service) Delete(ctx context.Context, userID uint) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.logger.Errorw("failed to delete user", "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("user deleted", "user_id", userID)
	return nil
}

func toResult(u *user.User) *UserResult {
	return &UserResult{
		ID:        u.ID(),
		Username:  u.Username(),
		Email:     u.Email(),
		RoleID:    u.RoleID(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
