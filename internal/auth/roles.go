package auth

// Role is the closed set of authorization tiers. Values match the role_id
// column of the seeded role table.
type Role uint

const (
	// RoleAdmin has full access, including employee administration.
	RoleAdmin Role = 1
	// RoleUser is a regular shop employee.
	RoleUser Role = 2
)

// Known reports whether the role id resolves to a seeded role. A token
// carrying an unknown role id is an integrity fault, not a client error.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// Predicate decides whether a role is sufficient for a route.
type Predicate func(Role) bool

// IsAdmin allows only administrators.
func IsAdmin(r Role) bool {
	return r == RoleAdmin
}

// IsUserOrAdmin allows regular employees and administrators. The union is
// enumerated explicitly; there is no role hierarchy.
func IsUserOrAdmin(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}
