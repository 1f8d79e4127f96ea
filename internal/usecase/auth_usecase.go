// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shop/internal/domain/entity"
	"shop/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new customer.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput confirms a registration. No token is issued.
type RegisterOutput struct {
	Message string
}

// TokenOutput carries a signed access token.
type TokenOutput struct {
	AccessToken string
}

// RegisterSuccessMessage is returned after a successful registration.
const RegisterSuccessMessage = "User successfully registered"

// AuthUsecase defines registration, login and bearer token resolution.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenOutput, error)
	GenerateToken(ctx context.Context, payload service.TokenPayload) (*TokenOutput, error)

	// Authenticate resolves a bearer token to the current user with roles.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
