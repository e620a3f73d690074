package domain

import "slices"

// Role tags carried by User.Roles.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User is an account that can own travels. Users are referenced by travels,
// never owned by them.
type User struct {
	ID    int64
	Email string
	Roles []string
}

// HasRole reports whether role is one of the user's role tags.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// IsAdmin reports whether the user carries RoleAdmin.
func (u User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
