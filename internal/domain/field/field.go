// Package field contains the dynamic field entity attached to tickets and the
// reference type used to address fields in ticket requests.
package field

import (
	"fmt"
	"time"
)

// Field is a named, typed attribute attachable to any number of tickets.
// Field names are unique system-wide.
type Field struct {
	id        uint
	name      string
	fieldType string
	createdAt time.Time
	updatedAt time.Time
}

func NewField(name, fieldType string) (*Field, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("field name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("field name exceeds maximum length of 100 characters")
	}
	if len(fieldType) == 0 {
		return nil, fmt.Errorf("field type is required")
	}

	now := time.Now()
	return &Field{
		name:      name,
		fieldType: fieldType,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructField(id uint, name, fieldType string, createdAt, updatedAt time.Time) (*Field, error) {
	if id == 0 {
		return nil, fmt.Errorf("field ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("field name is required")
	}

	return &Field{
		id:        id,
		name:      name,
		fieldType: fieldType,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *Field) ID() uint {
	return f.id
}

func (f *Field) Name() string {
	return f.name
}

func (f *Field) Type() string {
	return f.fieldType
}

func (f *Field) CreatedAt() time.Time {
	return f.createdAt
}

func (f *Field) UpdatedAt() time.Time {
	return f.updatedAt
}

func (f *Field) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("field ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("field ID cannot be zero")
	}
	f.id = id
	return nil
}

// Redefine updates the field's name and type.
func (f *Field) Redefine(name, fieldType string) error {
	if len(name) == 0 {
		return fmt.Errorf("field name is required")
	}
	if len(fieldType) == 0 {
		return fmt.Errorf("field type is required")
	}

	f.name = name
	f.fieldType = fieldType
	f.updatedAt = time.Now()
	return nil
}
