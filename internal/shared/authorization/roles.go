// Package authorization defines role values and role checks shared by the
// authorization rules and the HTTP layer.
package authorization

import "strconv"

// RoleID identifies a role record. The admin role occupies a fixed, well-known
// row so elevated access does not require a role table lookup per request.
type RoleID uint

const (
	// RoleIDAdmin is the elevated role granting bypass of ownership checks.
	RoleIDAdmin RoleID = 1
	// RoleIDMember is the default role assigned on signup. Elevated roles are
	// only granted through the admin-gated role and user endpoints.
	RoleIDMember RoleID = 2
)

func (r RoleID) IsAdmin() bool {
	return r == RoleIDAdmin
}

func (r RoleID) String() string {
	return strconv.FormatUint(uint64(r), 10)
}

// ParseRoleID parses a role id from its string form. Unparseable input yields
// the zero role, which holds no privileges.
func ParseRoleID(s string) RoleID {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return RoleID(0)
	}
	return RoleID(n)
}
