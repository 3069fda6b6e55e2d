package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/strategiq/scoreboard/internal/auth"
	"github.com/strategiq/scoreboard/internal/database"
	"github.com/strategiq/scoreboard/internal/export"
	"github.com/strategiq/scoreboard/internal/ledger"
	"github.com/strategiq/scoreboard/internal/questionlog"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the teams and question_logs tables if they are missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.New(ctx, cfg.DatabaseURL)
			if err != nil {
				return codeError(1, "connecting to database: %s", err)
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return codeError(1, "migrating schema: %s", err)
			}
			slog.Info("schema is up to date")
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the master sheet CSV to a file or stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.New(ctx, cfg.DatabaseURL)
			if err != nil {
				return codeError(1, "connecting to database: %s", err)
			}
			defer db.Close()

			svc := ledger.NewService(ledger.NewStores(db.Pool()), ledger.NewTransactor(db))

			var n int
			if out == "" {
				n, err = exportSheet(ctx, svc, cmd.OutOrStdout())
			} else {
				f, ferr := os.Create(out)
				if ferr != nil {
					return codeError(1, "creating %s: %s", out, ferr)
				}
				n, err = exportAndClose(ctx, svc, f)
			}
			if err != nil {
				return codeError(1, "exporting sheet: %s", err)
			}
			slog.Info("sheet exported", "rows", n, "out", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Write the sheet to this file instead of stdout")
	return cmd
}

// sheetSource is the slice of the ledger the export command reads.
type sheetSource interface {
	ExportLogs(ctx context.Context) ([]questionlog.Entry, error)
}

func exportSheet(ctx context.Context, src sheetSource, w io.Writer) (int, error) {
	entries, err := src.ExportLogs(ctx)
	if err != nil {
		return 0, err
	}
	if err := export.WriteSheet(w, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// exportAndClose writes the sheet to wc and closes it. A failed close is
// reported because it can mean buffered rows never reached the file.
func exportAndClose(ctx context.Context, src sheetSource, wc io.WriteCloser) (int, error) {
	n, err := exportSheet(ctx, src, wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing sheet: %w", cerr)
	}
	return n, err
}

func newKeygenCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an admin key and the ADMIN_KEY_HASH value that accepts it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
				return codeError(2, "--cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
			}

			rawKey, hash, err := auth.GenerateKey(cost)
			if err != nil {
				return codeError(1, "generating key: %s", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Admin key (shown once): %s\n", rawKey)
			fmt.Fprintf(w, "ADMIN_KEY_HASH=%s\n", hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", 12, "bcrypt cost for the generated hash")
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
