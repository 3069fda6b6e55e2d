package ledger

import (
	"errors"

	"github.com/strategiq/scoreboard/internal/questionlog"
	"github.com/strategiq/scoreboard/internal/team"
)

// ValidationError reports missing or malformed caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a persistence failure. Its detail is for logs only.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means a referenced team or log entry does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, questionlog.ErrEntryNotFound) ||
		errors.Is(err, questionlog.ErrUnknownTeam) ||
		errors.Is(err, team.ErrTeamNotFound)
}

// classify leaves validation and not-found errors untouched and wraps
// everything else as a StorageError.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) || IsNotFound(err) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}
