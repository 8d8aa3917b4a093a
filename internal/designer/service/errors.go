package service

import (
	"errors"
)

// ============================================================
// Errors
// ============================================================

var (
	ErrNotFound        = errors.New("not found")
	ErrIDMismatch      = errors.New("ID mismatch")
	ErrUnsupportedKind = errors.New("unsupported component type")
)

// ComponentError привязывает ошибку к виду сущности: "Bathroom not found",
// "Fixture ID mismatch", "fixture not found".
type ComponentError struct {
	Label string
	Err   error
}

func (e *ComponentError) Error() string {
	return e.Label + " " + e.Err.Error()
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}

func notFound(label string) error {
	return &ComponentError{Label: label, Err: ErrNotFound}
}
