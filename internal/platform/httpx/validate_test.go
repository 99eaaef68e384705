package httpx

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Code string `validate:"required"`
	Name string `validate:"required,max=5"`
}

func TestValidate(t *testing.T) {
	v := validator.New()

	require.NoError(t, Validate(v, sampleForm{Code: "A", Name: "ok"}))

	err := Validate(v, sampleForm{Name: "too long"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: code failed required, name failed max", err.Error())
}
