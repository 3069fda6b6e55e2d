package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/strategiq/scoreboard/internal/api/middleware"
	"github.com/strategiq/scoreboard/internal/api/response"
	"github.com/strategiq/scoreboard/internal/api/validation"
	"github.com/strategiq/scoreboard/internal/ledger"
	"github.com/strategiq/scoreboard/internal/questionlog"
	"github.com/strategiq/scoreboard/internal/team"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// ScoreLedger is the set of ledger operations the HTTP handlers call.
type ScoreLedger interface {
	AddTeam(ctx context.Context, name string) error
	ListTeams(ctx context.Context) ([]team.Team, error)
	ListScores(ctx context.Context) ([]team.Team, error)
	LogQuestion(ctx context.Context, in ledger.LogInput) (*questionlog.Entry, error)
	EditLogPoints(ctx context.Context, id int64, newPoints int) error
	DeleteLog(ctx context.Context, id int64) error
	ListLogs(ctx context.Context) ([]questionlog.Entry, error)
	ExportLogs(ctx context.Context) ([]questionlog.Entry, error)
	ResetScores(ctx context.Context) error
	ResetTournament(ctx context.Context) error
}

// decodeJSON reads a size-limited JSON body into v. It writes a 400 response
// and returns false on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		requestID := middleware.GetRequestID(r.Context())
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return false
	}
	return true
}

// writeValidationErrors writes a 400 with per-field details.
func writeValidationErrors(w http.ResponseWriter, r *http.Request, fieldErrors []validation.FieldError) {
	requestID := middleware.GetRequestID(r.Context())
	response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", fieldErrors[0].Message, fieldErrors, requestID)
}

// writeLedgerError maps a ledger error onto the HTTP error contract. Storage
// failures are logged and returned as an opaque 500.
func writeLedgerError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	requestID := middleware.GetRequestID(r.Context())

	var vErr *ledger.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeValidationErrors(w, r, []validation.FieldError{{Field: vErr.Field, Message: vErr.Message}})
	case errors.Is(err, questionlog.ErrEntryNotFound):
		response.Err(w, http.StatusNotFound, "NOT_FOUND", "Log not found", requestID)
	case ledger.IsNotFound(err):
		response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
	default:
		slog.Error(failure, "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", failure, requestID)
	}
}
