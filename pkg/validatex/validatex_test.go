package validatex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

func TestStruct_Valid(t *testing.T) {
	fields := Struct(registerRequest{Name: "Jane", Email: "jane@example.com"})

	assert.Nil(t, fields)
}

func TestStruct_MissingRequired(t *testing.T) {
	fields := Struct(registerRequest{Email: "jane@example.com"})

	require.NotNil(t, fields)
	assert.Equal(t, "required", fields["Name"])
}

func TestStruct_InvalidEmail(t *testing.T) {
	fields := Struct(registerRequest{Name: "Jane", Email: "not-an-email"})

	require.NotNil(t, fields)
	assert.Equal(t, "email", fields["Email"])
}

func TestStruct_CollectsEveryFailure(t *testing.T) {
	fields := Struct(registerRequest{Email: "not-an-email"})

	require.NotNil(t, fields)
	assert.Len(t, fields, 2)
}
