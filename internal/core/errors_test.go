// AngelaMos | 2026
// errors_test.go

package core

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NotFoundError("deal")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, err.Status)

	wrapped := fmt.Errorf("service layer: %w", err)
	var appErr *AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		FirstName string `validate:"required"`
		Email     string `validate:"required,email"`
		Prob      int    `validate:"gte=0,lte=100"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.Struct(payload{Email: "not-an-email", Prob: 150})
	require.Error(t, err)

	msg := FormatValidationError(err)
	assert.Contains(t, msg, "FirstName is required")
	assert.Contains(t, msg, "Email must be a valid email address")
	assert.Contains(t, msg, "Prob must be at most 100")
}

func TestFormatValidationErrorNonValidator(t *testing.T) {
	assert.Equal(t, "invalid request",
		FormatValidationError(errors.New("boom")))
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, IsConnectionError(driver.ErrBadConn))
	assert.True(t, IsConnectionError(
		fmt.Errorf("listing leads: %w", driver.ErrBadConn)))

	assert.False(t, IsConnectionError(errors.New("syntax error")))
	assert.False(t, IsConnectionError(nil))
}
