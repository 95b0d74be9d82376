package apperror

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ClientName  string `validate:"required,min=3"`
	ClientPhone string `validate:"required"`
}

func TestCustomValidationError(t *testing.T) {
	v := validator.New()

	err := CustomValidationError(v.Struct(sample{ClientName: "Al"}))

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.True(t, fe.Has("ClientName", TooShort))
	assert.True(t, fe.Has("ClientPhone", MissingField))
	assert.Equal(t, []string{"ClientName is invalid"}, fe.Messages("ClientName"))
}

func TestCustomValidationError_PassesOtherErrors(t *testing.T) {
	assert.Equal(t, ErrNotFound, CustomValidationError(ErrNotFound))
	assert.Nil(t, CustomValidationError(nil))
}

func TestFieldErrors(t *testing.T) {
	fe := make(FieldErrors)
	fe.Add("phone", PatternMismatch, "Некорректный номер телефона!")
	fe.Add("name", MissingField, "Введите своё имя!")

	assert.Equal(t, "invalid form: name: missing_field, phone: pattern_mismatch", fe.Error())
	assert.False(t, fe.Has("name", TooShort))
	assert.Empty(t, fe.Messages("goal"))
}
