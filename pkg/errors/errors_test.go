package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	underlying := errors.New("unexpected end of JSON input")
	err := NewParseError("tokens.json", underlying)

	assert.Equal(t, "parse error: tokens.json: unexpected end of JSON input", err.Error())
	assert.ErrorIs(t, err, underlying)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("theme.light", "unknown mode branch", nil)
	assert.Equal(t, "validation error: theme.light: unknown mode branch", err.Error())

	bare := NewValidationError("", "empty document", nil)
	assert.Equal(t, "validation error: empty document", bare.Error())
}

func TestUnresolvedReferenceError(t *testing.T) {
	err := NewUnresolvedReference("Tokens", "color.gray.900", ReasonMissing)
	assert.Equal(t, "unresolved reference {Tokens.color.gray.900}: missing", err.Error())

	var unresolved *UnresolvedReferenceError
	assert.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "color.gray.900", unresolved.Name)
}

func TestStorageError(t *testing.T) {
	err := NewStorageError("tokens", fs.ErrPermission)
	assert.Contains(t, err.Error(), "storage error [tokens]")
	assert.ErrorIs(t, err, fs.ErrPermission)
}
