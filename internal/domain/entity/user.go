package entity

import "time"

// User is an account in the credential store.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Roles        Roles
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(id RoleID) bool {
	return u != nil && u.Roles.Contains(id)
}
