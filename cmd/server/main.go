package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/strategiq/scoreboard/internal/config"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "scoreboard",
		Short: "Scorekeeping backend for quiz tournaments",
		Long:  "Scoreboard tracks teams and their 1200-based scores, and keeps an auditable log of every question's point award.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadEnv(envFile, cmd.Flag("env-file").Changed)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(commandContext(cmd))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file loaded before reading the environment; the default is skipped when missing")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newExportCmd(),
		newKeygenCmd(),
	)
	return root
}

const defaultEnvFile = ".env"

// loadEnv loads the dotenv file. A missing file is only an error when the
// user named it explicitly.
func loadEnv(path string, explicit bool) error {
	if explicit {
		if err := config.LoadEnvFile(path); err != nil {
			return codeError(2, "%s", err)
		}
		return nil
	}
	if err := config.LoadDotEnv(path); err != nil {
		return codeError(2, "loading %s: %s", path, err)
	}
	return nil
}

// loadConfig reads the environment and installs the JSON logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, codeError(2, "loading configuration: %s", err)
	}
	setupLogger(cfg.LogLevel)
	return cfg, nil
}

func setupLogger(level string) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
