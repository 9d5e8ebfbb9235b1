package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rojgarpatra/uikit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "email", Message: "is required"},
			{Field: "password", Message: "too short"},
		}
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "a"},
		{Field: "email", Message: "b"},
		{Field: "phone", Message: "c"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("address"))
	assert.Equal(t, []string{"a", "b"}, errs.Get("email"))
	assert.Nil(t, errs.Get("address"))
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("full_name", "Asha Rai"),
			validator.EmailFormat("email", "asha@example.com"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.RequiredString("full_name", " "),
			validator.EmailFormat("email", "asha"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"full_name", "email"}, []string{verrs[0].Field, verrs[1].Field})
	})
}

func TestFirst(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.First(validator.RequiredString("title", "My Resume")))
		assert.NoError(t, validator.First())
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		evaluated := false
		later := validator.Rule{
			Check: func() bool {
				evaluated = true
				return false
			},
			Error: validator.ValidationError{Field: "x", Message: "later"},
		}

		err := validator.First(
			validator.RequiredString("title", "ok"),
			validator.RequiredString("name", ""),
			later,
		)
		require.Error(t, err)
		assert.False(t, evaluated)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "name", verrs[0].Field)
		assert.Equal(t, validator.MessageRequired, verrs[0].Message)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := errors.Join(errors.New("context"), validator.ValidationErrors{{Field: "f", Message: "m"}})
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "f", verrs[0].Field)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
}
