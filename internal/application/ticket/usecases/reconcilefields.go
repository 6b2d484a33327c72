package usecases

import (
	"context"
	"fmt"

	"ticketd/internal/domain/field"
	"ticketd/internal/shared/errors"
)

// fieldResolver turns a mixed list of field references into concrete field
// entities. Resolution is two-phase so that a single bad element creates
// nothing: phase one validates every reference against the store, phase two
// creates the new descriptors. Callers run the resolver inside the ticket
// write transaction, which makes the created descriptors part of the same
// all-or-nothing write.
type fieldResolver struct {
	fieldRepo field.Repository
}

func newFieldResolver(fieldRepo field.Repository) *fieldResolver {
	return &fieldResolver{fieldRepo: fieldRepo}
}

// Resolve maps each reference to a field entity. A by-id reference must name
// an existing field; a descriptor must carry a name not yet taken by any
// field, anywhere in the system, and yields a newly created field.
func (r *fieldResolver) Resolve(ctx context.Context, refs []field.Ref) ([]*field.Field, error) {
	resolved := make([]*field.Field, len(refs))
	pending := make([]int, 0, len(refs))

	for i, ref := range refs {
		if ref.IsByID() {
			existing, err := r.fieldRepo.GetByID(ctx, ref.FieldID())
			if err != nil {
				return nil, err
			}
			resolved[i] = existing
			continue
		}

		desc := ref.Descriptor()
		existing, err := r.fieldRepo.GetByName(ctx, desc.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, errors.NewConflictError(fmt.Sprintf("field %q already exists", desc.Name))
		}
		pending = append(pending, i)
	}

	for _, i := range pending {
		desc := refs[i].Descriptor()
		f, err := field.NewField(desc.Name, desc.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := r.fieldRepo.Save(ctx, f); err != nil {
			return nil, err
		}
		resolved[i] = f
	}

	return resolved, nil
}

// disconnectDelta returns the ids present on the ticket but absent from the
// resolved desired set. Connecting the full desired set plus disconnecting
// the delta reconciles the link rows.
func disconnectDelta(currentIDs, desiredIDs []uint) []uint {
	desired := make(map[uint]struct{}, len(desiredIDs))
	for _, id := range desiredIDs {
		desired[id] = struct{}{}
	}

	delta := make([]uint, 0, len(currentIDs))
	for _, id := range currentIDs {
		if _, ok := desired[id]; !ok {
			delta = append(delta, id)
		}
	}
	return delta
}
