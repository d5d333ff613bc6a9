// Package common defines shared constants and sentinel errors used across
// the store, the storage backends and the CLI. Callers should use errors.Is
// to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Store-level errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrNotFound          = errors.New("not found")

	// Session errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrForbidden          = errors.New("admin privileges required")

	// Persistence errors.
	ErrNoData             = errors.New("no persisted data")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptState       = errors.New("corrupt persisted state")
)

// StorageError reports that the durable file could not be created, opened,
// read or written. It matches ErrStorageUnavailable.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

// CorruptStateError reports that persisted data exists but cannot be decoded.
// It matches ErrCorruptState.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt account data in %s: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

func (e *CorruptStateError) Is(target error) bool { return target == ErrCorruptState }
