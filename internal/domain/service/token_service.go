package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload is the identity embedded in an access token.
type TokenPayload struct {
	ID    int64
	Email string
}

// Claims defines the custom claims for access tokens.
// iat and exp come from the registered claims.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken signs an access token for the payload.
	GenerateToken(payload TokenPayload) (string, error)

	// ValidateToken checks signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
