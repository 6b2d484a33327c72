package field

import (
	"encoding/json"
	"fmt"
)

// Ref addresses a field in a ticket request: either an existing field by id,
// or a descriptor for a field to be created inline. Exactly one variant is
// set.
//
// The wire form is a mixed JSON array, e.g. [1, {"fieldName": "Priority", "type": "String"}].
type Ref struct {
	id         uint
	descriptor *Descriptor
}

// Descriptor describes a field that does not exist yet.
type Descriptor struct {
	Name string `json:"fieldName" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// RefByID returns a reference to an existing field.
func RefByID(id uint) Ref {
	return Ref{id: id}
}

// RefByDescriptor returns a reference describing a field to create.
func RefByDescriptor(name, fieldType string) Ref {
	return Ref{descriptor: &Descriptor{Name: name, Type: fieldType}}
}

// IsByID reports whether the reference names an existing field id.
func (r Ref) IsByID() bool {
	return r.descriptor == nil
}

// FieldID returns the referenced id. Only meaningful when IsByID is true.
func (r Ref) FieldID() uint {
	return r.id
}

// Descriptor returns the inline descriptor. Only meaningful when IsByID is false.
func (r Ref) Descriptor() Descriptor {
	if r.descriptor == nil {
		return Descriptor{}
	}
	return *r.descriptor
}

func (r Ref) String() string {
	if r.IsByID() {
		return fmt.Sprintf("field#%d", r.id)
	}
	return fmt.Sprintf("field %q (%s)", r.descriptor.Name, r.descriptor.Type)
}

// UnmarshalJSON accepts either a bare integer (existing field id) or a
// {fieldName, type} object (inline descriptor).
func (r *Ref) UnmarshalJSON(data []byte) error {
	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		if id == 0 {
			return fmt.Errorf("field ID cannot be zero")
		}
		*r = Ref{id: id}
		return nil
	}

	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("field reference must be a field ID or a {fieldName, type} object")
	}
	if d.Name == "" {
		return fmt.Errorf("fieldName is required for inline field definitions")
	}
	if d.Type == "" {
		return fmt.Errorf("type is required for inline field definitions")
	}

	*r = Ref{descriptor: &d}
	return nil
}

// MarshalJSON writes the same wire form UnmarshalJSON accepts.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.IsByID() {
		return json.Marshal(r.id)
	}
	return json.Marshal(r.descriptor)
}
