// Package services implements the user-initiated flows of medfinder:
// registering a user and searching doctors by symptom. Each flow performs one
// database round trip on a private connection and reports a typed Outcome
// instead of returning an error, so the presentation layer only decides how
// to show it.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/medfinder/internal/database"
	"github.com/dmitrijs2005/medfinder/internal/repositories/repomanager"
)

type OutcomeKind int

const (
	Success OutcomeKind = iota
	NoResults
	InputError
	DatabaseError
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case NoResults:
		return "no_results"
	case InputError:
		return "input_error"
	case DatabaseError:
		return "database_error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Severity selects how an alert is rendered.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Outcome is the user-visible result of a flow. Title and Message are empty
// for a silent success.
type Outcome struct {
	Kind    OutcomeKind
	Title   string
	Message string
	Err     error
}

func (o Outcome) Severity() Severity {
	switch o.Kind {
	case InputError:
		return Warning
	case DatabaseError:
		return Error
	default:
		return Info
	}
}

// Silent reports whether the outcome carries no alert.
func (o Outcome) Silent() bool {
	return o.Title == "" && o.Message == ""
}

func databaseError(err error) Outcome {
	return Outcome{
		Kind:    DatabaseError,
		Title:   "Database Error",
		Message: "Error: " + err.Error(),
		Err:     err,
	}
}

// Gateway hands out scoped connections and the repositories for its dialect.
type Gateway interface {
	WithConnection(ctx context.Context, fn func(ctx context.Context, conn *database.Connection) error) error
	Repos() repomanager.RepositoryManager
}
