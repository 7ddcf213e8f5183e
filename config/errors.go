package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// Error wraps a catalog failure with operation and location context.
type Error struct {
	Op    string
	Path  string // Optional: catalog file path
	Field string // Optional: e.g. entities[1].expose[0].using
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" %s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func invalidField(path, field string, err error) error {
	return &Error{Op: "config.parse", Path: path, Field: field, Err: errors.Join(ErrInvalidConfig, err)}
}
