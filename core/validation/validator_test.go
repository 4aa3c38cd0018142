package validation_test

import (
	"errors"
	"testing"

	"bookstore/core/apperror"
	"bookstore/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	Format string `json:"format" validate:"oneof=hardcover paperback"`
}

type request struct {
	Title string `json:"title" validate:"required,max=10"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Lines []line `json:"lines" validate:"min=1,dive"`
}

func TestValidate(t *testing.T) {
	v := validation.New()

	t.Run("Valid", func(t *testing.T) {
		err := v.Validate(request{Title: "Dune", Lines: []line{{Format: "paperback"}}})
		assert.NoError(t, err)
	})

	t.Run("Field Details", func(t *testing.T) {
		err := v.Validate(request{Email: "nope", Lines: []line{{Format: "scroll"}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperror.ErrValidation)

		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		details := appErr.Details.(map[string]string)
		assert.Equal(t, "is required", details["title"])
		assert.Equal(t, "must be a valid email address", details["email"])
		assert.Equal(t, "must be one of: hardcover paperback", details["lines[0].format"])
	})

	t.Run("Empty Slice", func(t *testing.T) {
		err := v.Validate(request{Title: "Dune"})
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "must contain at least 1 items", appErr.Details.(map[string]string)["lines"])
	})
}
