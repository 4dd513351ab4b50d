package validator

import (
	"testing"

	domainerrors "dashboard/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&loginBody{Email: "a@example.com", Password: "secret"}))

	err := v.Validate(&loginBody{Email: "not-an-email"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email:email")
	assert.Contains(t, err.Error(), "password:required")
}
