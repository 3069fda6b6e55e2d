package ledger

import (
	"context"
	"strings"

	"github.com/strategiq/scoreboard/internal/questionlog"
	"github.com/strategiq/scoreboard/internal/team"
)

// LogInput holds the fields of a scoring event. Points is a pointer so that an
// absent value can be told apart from zero.
type LogInput struct {
	Question   *string
	Team       string
	Points     *int
	RoundLabel *string
}

// Service implements the score ledger. Every write that touches both the
// question log and a team score runs in one transaction, which keeps each
// team's score equal to team.BaseScore plus the sum of its logged points.
type Service struct {
	read Stores
	tx   Transactor
}

// NewService creates a ledger Service. read serves projections; tx scopes writes.
func NewService(read Stores, tx Transactor) *Service {
	return &Service{read: read, tx: tx}
}

// AddTeam registers a team at the base score. Re-adding an existing name
// leaves it unchanged.
func (s *Service) AddTeam(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: team.NameRequiredMessage}
	}
	if len(name) > team.MaxNameLength {
		return &ValidationError{Field: "name", Message: team.NameTooLongMessage}
	}

	return classify("adding team", s.read.Teams.Add(ctx, name))
}

// ListTeams returns every team ordered by name.
func (s *Service) ListTeams(ctx context.Context) ([]team.Team, error) {
	teams, err := s.read.Teams.ListByName(ctx)
	if err != nil {
		return nil, classify("listing teams", err)
	}
	return teams, nil
}

// ListScores returns the leaderboard, highest score first.
func (s *Service) ListScores(ctx context.Context) ([]team.Team, error) {
	teams, err := s.read.Teams.ListByScore(ctx)
	if err != nil {
		return nil, classify("listing scores", err)
	}
	return teams, nil
}

// LogQuestion records a scoring event and applies its points to the team.
func (s *Service) LogQuestion(ctx context.Context, in LogInput) (*questionlog.Entry, error) {
	if in.Team == "" {
		return nil, &ValidationError{Field: "team", Message: "team is required"}
	}
	if in.Points == nil {
		return nil, &ValidationError{Field: "points", Message: "points is required"}
	}

	e := &questionlog.Entry{
		Question:   in.Question,
		Team:       in.Team,
		Points:     *in.Points,
		RoundLabel: in.RoundLabel,
	}

	err := s.tx.WithinTx(ctx, func(st Stores) error {
		if err := st.Logs.Create(ctx, e); err != nil {
			return err
		}
		return st.Teams.AdjustScore(ctx, e.Team, e.Points)
	})
	if err != nil {
		return nil, classify("logging question", err)
	}

	return e, nil
}

// EditLogPoints changes the points of an entry and moves the owning team's
// score by the difference.
func (s *Service) EditLogPoints(ctx context.Context, id int64, newPoints int) error {
	err := s.tx.WithinTx(ctx, func(st Stores) error {
		e, err := st.Logs.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		diff := newPoints - e.Points
		if err := st.Logs.UpdatePoints(ctx, id, newPoints); err != nil {
			return err
		}
		return st.Teams.AdjustScore(ctx, e.Team, diff)
	})
	return classify("editing log", err)
}

// DeleteLog removes an entry and reverses its contribution to the team score.
func (s *Service) DeleteLog(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(st Stores) error {
		e, err := st.Logs.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := st.Teams.AdjustScore(ctx, e.Team, -e.Points); err != nil {
			return err
		}
		return st.Logs.Delete(ctx, id)
	})
	return classify("deleting log", err)
}

// ListLogs returns every entry, most recent first.
func (s *Service) ListLogs(ctx context.Context) ([]questionlog.Entry, error) {
	entries, err := s.read.Logs.List(ctx, questionlog.Descending)
	if err != nil {
		return nil, classify("listing logs", err)
	}
	return entries, nil
}

// ExportLogs returns every entry in ascending id order.
func (s *Service) ExportLogs(ctx context.Context) ([]questionlog.Entry, error) {
	entries, err := s.read.Logs.List(ctx, questionlog.Ascending)
	if err != nil {
		return nil, classify("exporting logs", err)
	}
	return entries, nil
}

// ResetScores wipes the question log and returns every team to the base score.
//
// Both resets lock the log table before touching anything. Every scoring write
// starts on question_logs and only then adjusts a team, so the lock waits for
// in-flight writes to commit and keeps new ones out until the reset is done.
// Without it a log row inserted by an uncommitted write survives the delete
// while its team's score is still reset.
func (s *Service) ResetScores(ctx context.Context) error {
	err := s.tx.WithinTx(ctx, func(st Stores) error {
		if err := st.Logs.LockAll(ctx); err != nil {
			return err
		}
		if err := st.Logs.DeleteAll(ctx); err != nil {
			return err
		}
		return st.Teams.ResetScores(ctx)
	})
	return classify("resetting scores", err)
}

// ResetTournament removes every log entry and every team, under the same
// table lock as ResetScores.
func (s *Service) ResetTournament(ctx context.Context) error {
	err := s.tx.WithinTx(ctx, func(st Stores) error {
		if err := st.Logs.LockAll(ctx); err != nil {
			return err
		}
		if err := st.Logs.DeleteAll(ctx); err != nil {
			return err
		}
		return st.Teams.DeleteAll(ctx)
	})
	return classify("resetting tournament", err)
}
