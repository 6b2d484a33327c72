package ticket

import "ticketd/internal/shared/authorization"

// Actor identifies the user performing an operation.
type Actor struct {
	ID     uint
	RoleID authorization.RoleID
}

func (a Actor) IsAdmin() bool {
	return a.RoleID.IsAdmin()
}

// CanAccess decides whether the actor may read the ticket: admins and the
// ticket's assignee (its creator/owner) may, everyone else may not.
func CanAccess(t *Ticket, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return t.AssigneeID() == actor.ID
}

// CanMutate decides whether the actor may update or delete the ticket. The
// rule is the same ownership-or-admin check as for reads.
func CanMutate(t *Ticket, actor Actor) bool {
	return CanAccess(t, actor)
}
