package models

import "strings"

// Role is the already-resolved role of the user a report is rendered for
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// KnownRoles lists the roles that have a visibility policy
var KnownRoles = map[Role]bool{
	RoleAdmin: true,
	RoleUser:  true,
}

// ParseRole normalises a role string. Unknown values are kept as-is.
func ParseRole(s string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(s)))
}

// IsKnown reports whether the role has a visibility policy
func (r Role) IsKnown() bool {
	return KnownRoles[r]
}

// User represents the viewer of a report
type User struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}
