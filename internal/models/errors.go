package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("revision conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// ConflictError is returned when another writer advanced an entity's revision
// between the read of the prior revision and the commit of the new one.
type ConflictError struct {
	Entity   string
	ID       string
	Expected int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s: revision %d is no longer current", e.Entity, e.ID, e.Expected)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

type ValidationError struct {
	Errors []string
}

func NewValidationError(errs ...string) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	return "object validation failed: " + strings.Join(e.Errors, "; ")
}

// StorageError wraps failures of the database or the asset file store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NotFound(kind, id string) error {
	return fmt.Errorf("could not find %s with ID %s: %w", kind, id, ErrNotFound)
}
