package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strategiq/scoreboard/internal/ledger"
	"github.com/strategiq/scoreboard/internal/questionlog"
	"github.com/strategiq/scoreboard/internal/team"
)

// --- Mock Ledger ---

type mockLedger struct {
	addTeamFn         func(ctx context.Context, name string) error
	listTeamsFn       func(ctx context.Context) ([]team.Team, error)
	listScoresFn      func(ctx context.Context) ([]team.Team, error)
	logQuestionFn     func(ctx context.Context, in ledger.LogInput) (*questionlog.Entry, error)
	editLogPointsFn   func(ctx context.Context, id int64, newPoints int) error
	deleteLogFn       func(ctx context.Context, id int64) error
	listLogsFn        func(ctx context.Context) ([]questionlog.Entry, error)
	exportLogsFn      func(ctx context.Context) ([]questionlog.Entry, error)
	resetScoresFn     func(ctx context.Context) error
	resetTournamentFn func(ctx context.Context) error
}

func (m *mockLedger) AddTeam(ctx context.Context, name string) error {
	if m.addTeamFn != nil {
		return m.addTeamFn(ctx, name)
	}
	return nil
}

func (m *mockLedger) ListTeams(ctx context.Context) ([]team.Team, error) {
	if m.listTeamsFn != nil {
		return m.listTeamsFn(ctx)
	}
	return []team.Team{}, nil
}

func (m *mockLedger) ListScores(ctx context.Context) ([]team.Team, error) {
	if m.listScoresFn != nil {
		return m.listScoresFn(ctx)
	}
	return []team.Team{}, nil
}

func (m *mockLedger) LogQuestion(ctx context.Context, in ledger.LogInput) (*questionlog.Entry, error) {
	if m.logQuestionFn != nil {
		return m.logQuestionFn(ctx, in)
	}
	return &questionlog.Entry{ID: 1, Team: in.Team, Points: *in.Points}, nil
}

func (m *mockLedger) EditLogPoints(ctx context.Context, id int64, newPoints int) error {
	if m.editLogPointsFn != nil {
		return m.editLogPointsFn(ctx, id, newPoints)
	}
	return nil
}

func (m *mockLedger) DeleteLog(ctx context.Context, id int64) error {
	if m.deleteLogFn != nil {
		return m.deleteLogFn(ctx, id)
	}
	return nil
}

func (m *mockLedger) ListLogs(ctx context.Context) ([]questionlog.Entry, error) {
	if m.listLogsFn != nil {
		return m.listLogsFn(ctx)
	}
	return []questionlog.Entry{}, nil
}

func (m *mockLedger) ExportLogs(ctx context.Context) ([]questionlog.Entry, error) {
	if m.exportLogsFn != nil {
		return m.exportLogsFn(ctx)
	}
	return []questionlog.Entry{}, nil
}

func (m *mockLedger) ResetScores(ctx context.Context) error {
	if m.resetScoresFn != nil {
		return m.resetScoresFn(ctx)
	}
	return nil
}

func (m *mockLedger) ResetTournament(ctx context.Context) error {
	if m.resetTournamentFn != nil {
		return m.resetTournamentFn(ctx)
	}
	return nil
}

// --- Helpers ---

func makeRequest(method, path string, body []byte) (*http.Request, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")

	return req, httptest.NewRecorder()
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &env)
	require.NoError(t, err, "failed to parse response body")
	return env
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	env := parseEnvelope(t, w)
	errObj, ok := env["error"].(map[string]interface{})
	require.True(t, ok, "response should carry an error object")
	return errObj["code"].(string)
}

func strPtr(v string) *string { return &v }
