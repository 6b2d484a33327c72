// Package user contains the user domain entity and its repository contract.
package user

import (
	"fmt"
	"strings"
	"time"

	"ticketd/internal/shared/authorization"
)

// User represents an account holder. The password hash never leaves the
// domain/persistence boundary; outward representations omit it.
type User struct {
	id           uint
	username     string
	email        string
	passwordHash string
	roleID       authorization.RoleID
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, email, passwordHash string, roleID authorization.RoleID) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		username:     username,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		roleID:       roleID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, email, passwordHash string,
	roleID authorization.RoleID,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		roleID:       roleID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) RoleID() authorization.RoleID {
	return u.roleID
}

func (u *User) IsAdmin() bool {
	return u.roleID.IsAdmin()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes the user's username and email. Empty values keep the
// current ones.
func (u *User) UpdateProfile(username, email string) error {
	if username != "" {
		u.username = username
	}
	if email != "" {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("a valid email is required")
		}
		u.email = strings.ToLower(email)
	}
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole assigns a different role to the user.
func (u *User) ChangeRole(roleID authorization.RoleID) {
	u.roleID = roleID
	u.updatedAt = time.Now()
}
