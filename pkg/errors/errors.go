package errors

import (
	"fmt"
)

// ParseError represents a document parsing failure with optional path metadata.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Reasons an UnresolvedReferenceError reports.
const (
	ReasonMissing       = "missing"
	ReasonCycle         = "cycle"
	ReasonDepthExceeded = "depth exceeded"
	ReasonBadShape      = "malformed reference"
)

// UnresolvedReferenceError is returned when a token or theme reference cannot
// be resolved to a concrete value. It is a normal outcome rather than a
// failure: callers substitute a fallback and keep rendering.
type UnresolvedReferenceError struct {
	Collection string
	Name       string
	Reason     string
}

// NewUnresolvedReference constructs an UnresolvedReferenceError.
func NewUnresolvedReference(collection, name, reason string) error {
	return &UnresolvedReferenceError{Collection: collection, Name: name, Reason: reason}
}

func (e *UnresolvedReferenceError) Error() string {
	if e == nil {
		return ""
	}
	if e.Collection != "" {
		return fmt.Sprintf("unresolved reference {%s.%s}: %s", e.Collection, e.Name, e.Reason)
	}
	return fmt.Sprintf("unresolved reference %s: %s", e.Name, e.Reason)
}

// StorageError indicates the persistence layer failed for a specific slot.
type StorageError struct {
	Slot string
	Err  error
}

// NewStorageError constructs a StorageError for the given storage slot.
func NewStorageError(slot string, err error) error {
	return &StorageError{Slot: slot, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Slot != "" {
		return fmt.Sprintf("storage error [%s]: %v", e.Slot, e.Err)
	}
	return fmt.Sprintf("storage error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
