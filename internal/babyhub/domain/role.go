package domain

// Role is the closed set of access levels a profile can hold. Visibility and
// mutation rights across the site hang off this single value.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleFamily Role = "family"
	RoleFriend Role = "friend"
)

// DefaultRole is assigned to freshly created profiles until an invite
// redemption overwrites it.
const DefaultRole = RoleFriend

// Roles lists every valid role. Order matters for display only.
func Roles() []Role {
	return []Role{RoleAdmin, RoleFamily, RoleFriend}
}

// Valid reports whether r is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFamily, RoleFriend:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
