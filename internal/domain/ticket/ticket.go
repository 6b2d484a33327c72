// Package ticket contains the ticket aggregate, its access rule, and its
// repository contract.
package ticket

import (
	"fmt"
	"time"

	"ticketd/internal/domain/field"
)

// Ticket is the central work item. The assignee is the user who created the
// ticket and owns it; assignedTo optionally delegates the ticket to a
// different user. Fields form a many-to-many relation: a field may be
// attached to any number of tickets and outlives all of them.
type Ticket struct {
	id           uint
	name         string
	status       string
	description  string
	assigneeID   uint
	assignedToID *uint
	fields       []*field.Field
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTicket(name, status, description string, assigneeID uint, assignedToID *uint) (*Ticket, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("ticket name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("ticket name exceeds maximum length of 200 characters")
	}
	if len(status) == 0 {
		return nil, fmt.Errorf("ticket status is required")
	}
	if assigneeID == 0 {
		return nil, fmt.Errorf("assignee ID is required")
	}
	if assignedToID != nil && *assignedToID == assigneeID {
		return nil, fmt.Errorf("ticket cannot be assigned to its own assignee")
	}

	now := time.Now()
	return &Ticket{
		name:         name,
		status:       status,
		description:  description,
		assigneeID:   assigneeID,
		assignedToID: assignedToID,
		fields:       []*field.Field{},
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	name, status, description string,
	assigneeID uint,
	assignedToID *uint,
	fields []*field.Field,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("ticket name is required")
	}

	if fields == nil {
		fields = []*field.Field{}
	}

	return &Ticket{
		id:           id,
		name:         name,
		status:       status,
		description:  description,
		assigneeID:   assigneeID,
		assignedToID: assignedToID,
		fields:       fields,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Name() string {
	return t.name
}

func (t *Ticket) Status() string {
	return t.status
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) AssigneeID() uint {
	return t.assigneeID
}

func (t *Ticket) AssignedToID() *uint {
	return t.assignedToID
}

func (t *Ticket) Fields() []*field.Field {
	fieldsCopy := make([]*field.Field, len(t.fields))
	copy(fieldsCopy, t.fields)
	return fieldsCopy
}

// FieldIDs returns the ids of the currently attached fields.
func (t *Ticket) FieldIDs() []uint {
	ids := make([]uint, 0, len(t.fields))
	for _, f := range t.fields {
		ids = append(ids, f.ID())
	}
	return ids
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails applies partial changes to name, status, and description.
// Nil keeps the current value.
func (t *Ticket) UpdateDetails(name, status, description *string) error {
	if name != nil {
		if len(*name) == 0 {
			return fmt.Errorf("ticket name cannot be empty")
		}
		if len(*name) > 200 {
			return fmt.Errorf("ticket name exceeds maximum length of 200 characters")
		}
		t.name = *name
	}
	if status != nil {
		if len(*status) == 0 {
			return fmt.Errorf("ticket status cannot be empty")
		}
		t.status = *status
	}
	if description != nil {
		t.description = *description
	}

	t.updatedAt = time.Now()
	return nil
}

// Delegate hands the ticket to another user. The owner cannot delegate the
// ticket to themselves; nil clears the delegation.
func (t *Ticket) Delegate(assignedToID *uint) error {
	if assignedToID != nil && *assignedToID == t.assigneeID {
		return fmt.Errorf("ticket cannot be assigned to its own assignee")
	}
	t.assignedToID = assignedToID
	t.updatedAt = time.Now()
	return nil
}

// ReplaceFields swaps the attached field set for the given one.
func (t *Ticket) ReplaceFields(fields []*field.Field) {
	if fields == nil {
		fields = []*field.Field{}
	}
	t.fields = fields
	t.updatedAt = time.Now()
}
