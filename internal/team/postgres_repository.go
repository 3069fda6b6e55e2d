package team

import (
	"context"
	"fmt"

	"github.com/strategiq/scoreboard/internal/database"
)

// PostgresRepository implements Repository on top of a pool or a transaction.
type PostgresRepository struct {
	db database.DBTX
}

// NewRepository creates a new Repository backed by the given querier.
func NewRepository(db database.DBTX) Repository {
	return &PostgresRepository{db: db}
}

// Add inserts a new team with the base score, ignoring name conflicts.
func (r *PostgresRepository) Add(ctx context.Context, name string) error {
	query := `
		INSERT INTO teams (name, score)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, name, BaseScore); err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}

	return nil
}

// ListByName retrieves all teams in ascending name order.
func (r *PostgresRepository) ListByName(ctx context.Context) ([]Team, error) {
	return r.list(ctx, `SELECT name, score FROM teams ORDER BY name ASC`)
}

// ListByScore retrieves all teams, highest score first.
func (r *PostgresRepository) ListByScore(ctx context.Context) ([]Team, error) {
	return r.list(ctx, `SELECT name, score FROM teams ORDER BY score DESC`)
}

// AdjustScore adds delta to the team's score in a single statement so
// concurrent adjustments never lose updates.
func (r *PostgresRepository) AdjustScore(ctx context.Context, name string, delta int) error {
	query := `UPDATE teams SET score = score + $1 WHERE name = $2`

	result, err := r.db.Exec(ctx, query, delta, name)
	if err != nil {
		return fmt.Errorf("adjusting team score: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// ResetScores sets every team back to the base score.
func (r *PostgresRepository) ResetScores(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `UPDATE teams SET score = $1`, BaseScore); err != nil {
		return fmt.Errorf("resetting team scores: %w", err)
	}
	return nil
}

// DeleteAll removes every team.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM teams`); err != nil {
		return fmt.Errorf("deleting teams: %w", err)
	}
	return nil
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]Team, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.Name, &t.Score); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}
