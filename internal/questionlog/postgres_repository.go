package questionlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

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

// Create inserts a new entry and fills in its id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, e *Entry) error {
	query := `
		INSERT INTO question_logs (question, team, points, round_label)
		VALUES ($1, $2, $3, $4)
		RETURNING id, time`

	err := r.db.QueryRow(ctx, query, e.Question, e.Team, e.Points, e.RoundLabel).Scan(&e.ID, &e.Time)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUnknownTeam
		}
		return fmt.Errorf("inserting log entry: %w", err)
	}

	return nil
}

// GetForUpdate retrieves a single entry by id with a row lock.
func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*Entry, error) {
	query := `
		SELECT id, question, team, points, round_label, time
		FROM question_logs
		WHERE id = $1
		FOR UPDATE`

	var e Entry
	err := r.db.QueryRow(ctx, query, id).Scan(&e.ID, &e.Question, &e.Team, &e.Points, &e.RoundLabel, &e.Time)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("querying log entry: %w", err)
	}

	return &e, nil
}

// UpdatePoints overwrites the points of an entry.
func (r *PostgresRepository) UpdatePoints(ctx context.Context, id int64, points int) error {
	result, err := r.db.Exec(ctx, `UPDATE question_logs SET points = $1 WHERE id = $2`, points, id)
	if err != nil {
		return fmt.Errorf("updating log entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry by id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM question_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting log entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// List retrieves every entry ordered by id in the given direction.
func (r *PostgresRepository) List(ctx context.Context, order Order) ([]Entry, error) {
	direction := "DESC"
	if order == Ascending {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, question, team, points, round_label, time
		FROM question_logs
		ORDER BY id %s`, direction)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing log entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Question, &e.Team, &e.Points, &e.RoundLabel, &e.Time); err != nil {
			return nil, fmt.Errorf("scanning log entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log entry rows: %w", err)
	}

	if entries == nil {
		entries = []Entry{}
	}

	return entries, nil
}

// LockAll takes an EXCLUSIVE lock on question_logs. It waits for in-flight
// inserts, edits and deletes to commit, so a bulk statement that follows sees
// every row they wrote.
func (r *PostgresRepository) LockAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `LOCK TABLE question_logs IN EXCLUSIVE MODE`); err != nil {
		return fmt.Errorf("locking log table: %w", err)
	}
	return nil
}

// DeleteAll removes every entry.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM question_logs`); err != nil {
		return fmt.Errorf("deleting log entries: %w", err)
	}
	return nil
}
