// Package common defines the error vocabulary shared by the storage, flow and
// presentation layers of medfinder. Sentinels are matched with errors.Is, the
// typed errors with errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// Navigation errors.
	ErrUnknownPage   = errors.New("unknown page")
	ErrDuplicatePage = errors.New("duplicate page")

	// Validation errors.
	ErrFieldsRequired = errors.New("all fields are required")

	// Connection lifecycle errors.
	ErrConnectionClosed  = errors.New("connection closed")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// InputError reports user input rejected before any database access.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ConnectionError reports that the store could not be reached.
type ConnectionError struct {
	Driver string
	Err    error
}

func (e *ConnectionError) Error() string {
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError reports a failed statement or commit: malformed SQL, a
// constraint violation, a dropped connection mid-query.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }
