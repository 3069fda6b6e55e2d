package questionlog

import (
	"context"
	"errors"
)

// ErrEntryNotFound is returned when a log entry is not found.
var ErrEntryNotFound = errors.New("log entry not found")

// ErrUnknownTeam is returned when an entry references a team that does not exist.
var ErrUnknownTeam = errors.New("log entry references unknown team")

// Repository provides operations on the question_logs table.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	// GetForUpdate loads an entry and locks it until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*Entry, error)
	UpdatePoints(ctx context.Context, id int64, points int) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, order Order) ([]Entry, error)
	DeleteAll(ctx context.Context) error
	// LockAll blocks every writer of question_logs until the surrounding
	// transaction ends. Plain reads are not blocked. Only valid inside a transaction.
	LockAll(ctx context.Context) error
}
