package validator

import (
	"testing"

	domainerrors "shop/internal/domain/errors"
	"shop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

func TestValidate(t *testing.T) {
	cv := New()

	tests := []struct {
		name    string
		input   credentials
		details []string
	}{
		{name: "valid", input: credentials{Email: "a@example.com", Password: "Password1"}},
		{name: "bad email", input: credentials{Email: "nope", Password: "Password1"}, details: []string{"email must be a valid email"}},
		{name: "short password", input: credentials{Email: "a@example.com", Password: "short"}, details: []string{"password must be at least 8 characters"}},
		{name: "long password", input: credentials{Email: "a@example.com", Password: "abcdefghijklmnopqrstuvwxyz"}, details: []string{"password must be at most 20 characters"}},
		{name: "both missing", input: credentials{}, details: []string{"email is required", "password is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.input)
			if tt.details == nil {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			for _, d := range tt.details {
				assert.Contains(t, appErr.Details(), d)
			}
		})
	}
}
