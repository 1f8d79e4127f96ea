package usecase

import (
	"context"

	"shop/internal/domain/entity"
)

// UpdateUserInput holds the optional changes of a user update.
type UpdateUserInput struct {
	Email    *string
	Password *string
}

// UserUsecase manages accounts and their roles.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUser is allowed for admins and for the account owner.
	UpdateUser(ctx context.Context, actor *entity.User, userID int64, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	AssignRole(ctx context.Context, userID int64, roleID entity.RoleID) (*entity.User, error)
}
