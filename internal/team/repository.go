package team

import (
	"context"
	"errors"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("team not found")

// Repository provides operations on the teams table.
type Repository interface {
	// Add inserts a team at BaseScore. Adding an existing name is a no-op.
	Add(ctx context.Context, name string) error
	ListByName(ctx context.Context) ([]Team, error)
	// ListByScore returns teams ordered by score, highest first. Ties are
	// returned in storage order.
	ListByScore(ctx context.Context) ([]Team, error)
	AdjustScore(ctx context.Context, name string, delta int) error
	ResetScores(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}
