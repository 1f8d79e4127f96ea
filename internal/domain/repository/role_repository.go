package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// ErrRoleNotFound is returned when a role id is not part of the registry.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository reads and seeds the role registry.
type RoleRepository interface {
	FindByID(ctx context.Context, id entity.RoleID) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)

	// Upsert inserts or renames roles keyed on id.
	Upsert(ctx context.Context, roles []entity.Role) error
}
