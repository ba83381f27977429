package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordForm struct {
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

func TestValidator_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&passwordForm{Password: "short", ConfirmPassword: "other"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "min=8", fields["password"])
	assert.Equal(t, "eqfield=Password", fields["confirm_password"])
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&passwordForm{Password: "long-enough", ConfirmPassword: "long-enough"}))
	assert.Nil(t, FieldErrors(assert.AnError))
}
