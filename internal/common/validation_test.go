package common

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestValidatorRules(t *testing.T) {
	v := NewValidator().
		Field("name", "  ", Required).
		Field("email", strp("not-an-email"), Email).
		Field("phone", strp("+1 (555) 010-2000"), Phone).
		Field("address", strp(strings.Repeat("x", 11)), MaxLength(10)).
		Field("skipped", (*string)(nil), Email, Phone, MaxLength(1))

	require.True(t, v.HasErrors())
	fields := make([]string, 0, len(v.Errors()))
	for _, e := range v.Errors() {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"name", "email", "address"}, fields)
	assert.Contains(t, v.ErrorMessage(), "must be at most 10 characters")

	err := ValidateAndReturnError(v)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidator_NoErrors(t *testing.T) {
	v := NewValidator().Field("email", "a@b.co", Required, Email)
	assert.False(t, v.HasErrors())
	assert.NoError(t, v.Error())
	assert.NoError(t, ValidateAndReturnError(v))
}

func TestCurrencyCode(t *testing.T) {
	assert.Nil(t, CurrencyCode("c", "USD"))
	assert.NotNil(t, CurrencyCode("c", "US"))
	assert.NotNil(t, CurrencyCode("c", "QQQ"))
	assert.NotNil(t, CurrencyCode("c", 840))
}

func TestAppErrors(t *testing.T) {
	cause := errors.New("connection reset")
	err := DatabaseError("insert statement", cause)
	assert.ErrorIs(t, err, ErrDatabase)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DATABASE_ERROR: insert statement")

	assert.True(t, IsNotFound(NotFoundErrorf("statement %d", 7)))
	assert.ErrorIs(t, InvalidArgumentErrorf("bad %s", "id"), ErrInvalidInput)
	assert.Nil(t, WrapError(nil, "ignored"))
	assert.EqualError(t, WrapError(cause, "ping"), "ping: connection reset")
}

func TestContextHelpers(t *testing.T) {
	ctx := t.Context()
	assert.Equal(t, uuid.Nil, RunIDFromContext(ctx))

	id := uuid.New()
	ctx = WithRunID(ctx, id)
	assert.Equal(t, id, RunIDFromContext(ctx))

	assert.NotNil(t, LoggerFromContext(ctx, nil))
}
