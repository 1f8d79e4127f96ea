// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the standard operations for user persistence.
// Every returned user has its roles loaded.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user together with its roles and sets the generated ID.
	Create(ctx context.Context, user *entity.User) error

	// Update writes email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and its role links.
	Delete(ctx context.Context, id int64) error

	// AssignRole links a role to a user. Assigning a held role is a no-op.
	AssignRole(ctx context.Context, userID int64, roleID entity.RoleID) error
}
