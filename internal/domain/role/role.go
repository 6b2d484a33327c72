// Package role contains the role domain entity and its repository contract.
package role

import (
	"fmt"
	"time"
)

// Role represents a named access level assignable to users. Role names are
// unique across the system.
type Role struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRole(name, description string) (*Role, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("role name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("role name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Role{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructRole(id uint, name, description string, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("role name is required")
	}

	return &Role{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) Description() string {
	return r.description
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

// Rename updates the role's name and description.
func (r *Role) Rename(name, description string) error {
	if len(name) == 0 {
		return fmt.Errorf("role name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("role name exceeds maximum length of 100 characters")
	}

	r.name = name
	r.description = description
	r.updatedAt = time.Now()
	return nil
}
