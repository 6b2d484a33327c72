// Package auth implements signup and login on top of the user repository,
// the bcrypt hasher, and the JWT issuer.
package auth

import (
	"context"

	"ticketd/internal/domain/user"
	"ticketd/internal/shared/authorization"
	"ticketd/internal/shared/errors"
	"ticketd/internal/shared/goroutine"
	"ticketd/internal/shared/logger"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID uint, roleID authorization.RoleID) (string, error)
	AccessExpMinutes() int
}

// WelcomeMailer sends the signup welcome mail. Delivery is best-effort.
type WelcomeMailer interface {
	SendWelcomeEmail(to, name string) error
}

type SignupCommand struct {
	Username string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

type UserResult struct {
	ID       uint                 `json:"id"`
	Username string               `json:"username"`
	Email    string               `json:"email"`
	RoleID   authorization.RoleID `json:"roleId"`
}

type LoginResult struct {
	AccessToken string     `json:"accessToken"`
	ExpiresIn   int64      `json:"expiresIn"`
	User        UserResult `json:"user"`
}

type Service struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	mailer   WelcomeMailer
	logger   logger.Interface
}

func NewService(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	mailer WelcomeMailer,
	logger logger.Interface,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

func (s *Service) Signup(ctx context.Context, cmd SignupCommand) (*UserResult, error) {
	existing, err := s.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		s.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("user with this email already exists")
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	// every signup starts as a plain member; role changes go through the
	// admin-gated endpoints
	newUser, err := user.NewUser(cmd.Username, cmd.Email, hash, authorization.RoleIDMember)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Save(ctx, newUser); err != nil {
		s.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	email := newUser.Email()
	username := newUser.Username()
	goroutine.SafeGo(s.logger, "welcome-email", func() {
		if err := s.mailer.SendWelcomeEmail(email, username); err != nil {
			s.logger.Warnw("failed to send welcome email", "to", email, "error", err)
		}
	})

	s.logger.Infow("user signed up", "user_id", newUser.ID(), "email", email)

	return userToResult(newUser), nil
}

func (s *Service) Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := s.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		s.logger.Errorw("failed to look up user", "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := s.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		s.logger.Warnw("login rejected", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.Generate(u.ID(), u.RoleID())
	if err != nil {
		s.logger.Errorw("failed to issue access token", "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	s.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.AccessExpMinutes()) * 60,
		User:        *userToResult(u),
	}, nil
}

func userToResult(u *user.User) *UserResult {
	return &UserResult{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		RoleID:   u.RoleID(),
	}
}
