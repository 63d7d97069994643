package types

import "fmt"

// Role classifies a subject into one privilege tier of the storefront.
// A role is assigned to a subject externally, on its profile record, and is
// immutable once assigned; this package only enumerates the tiers.
type Role string

// all roles known to the storefront
const (
	Customer Role = "customer"
	Editor   Role = "editor"
	Staff    Role = "staff"
	Admin    Role = "admin"
)

// AllRoles returns every enumerated role, lowest privilege tier first.
func AllRoles() []Role {
	return []Role{Customer, Editor, Staff, Admin}
}

// Valid tells if r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case Customer, Editor, Staff, Admin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole parses a role read from an external record
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}
