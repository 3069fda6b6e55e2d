package ledger

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/strategiq/scoreboard/internal/database"
	"github.com/strategiq/scoreboard/internal/questionlog"
	"github.com/strategiq/scoreboard/internal/team"
)

// Stores groups the repositories a ledger operation works against.
type Stores struct {
	Teams team.Repository
	Logs  questionlog.Repository
}

// Transactor runs fn with Stores bound to one atomic transaction. Everything
// fn writes is committed together when it returns nil and discarded otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(s Stores) error) error
}

// NewStores binds both repositories to the given querier.
func NewStores(db database.DBTX) Stores {
	return Stores{
		Teams: team.NewRepository(db),
		Logs:  questionlog.NewRepository(db),
	}
}

// PostgresTransactor implements Transactor with database transactions.
type PostgresTransactor struct {
	db *database.DB
}

// NewTransactor creates a Transactor backed by the given database.
func NewTransactor(db *database.DB) *PostgresTransactor {
	return &PostgresTransactor{db: db}
}

// WithinTx begins a transaction, hands fn the transaction-bound Stores and
// commits or rolls back based on fn's result.
func (t *PostgresTransactor) WithinTx(ctx context.Context, fn func(s Stores) error) error {
	return t.db.WithTx(ctx, func(tx pgx.Tx) error {
		return fn(NewStores(tx))
	})
}
