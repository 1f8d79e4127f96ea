// Package entity contains the core business objects of the project.
package entity

import "slices"

// RoleID identifies a role in the fixed role registry.
type RoleID int64

const (
	// RoleCustomer is assigned to every account on registration.
	RoleCustomer RoleID = 1
	// RoleAdmin can manage users and any catalog.
	RoleAdmin RoleID = 2
	// RoleMerchant owns and manages products.
	RoleMerchant RoleID = 3
)

var roleNames = map[RoleID]string{
	RoleCustomer: "Customer",
	RoleAdmin:    "Admin",
	RoleMerchant: "Merchant",
}

// Name returns the registry name of the role, or "" for unknown ids.
func (id RoleID) Name() string {
	return roleNames[id]
}

// IsValid checks if the RoleID is part of the registry.
func (id RoleID) IsValid() bool {
	_, ok := roleNames[id]

	return ok
}

// Role is static reference data seeded once.
type Role struct {
	ID   RoleID
	Name string
}

// DefaultRoles returns the full registry in id order.
func DefaultRoles() []Role {
	ids := []RoleID{RoleCustomer, RoleAdmin, RoleMerchant}
	roles := make([]Role, 0, len(ids))
	for _, id := range ids {
		roles = append(roles, Role{ID: id, Name: id.Name()})
	}

	return roles
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(id RoleID) bool {
	return slices.ContainsFunc(rs, func(r Role) bool { return r.ID == id })
}

// ContainsAny reports whether at least one of ids is held.
func (rs Roles) ContainsAny(ids ...RoleID) bool {
	return slices.ContainsFunc(ids, rs.Contains)
}

// Names lists role names for responses and logs.
func (rs Roles) Names() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.Name
	}

	return result
}
