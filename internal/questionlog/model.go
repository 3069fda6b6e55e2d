package questionlog

import "time"

// Entry represents a row in the question_logs table.
type Entry struct {
	ID         int64
	Question   *string
	Team       string
	Points     int
	RoundLabel *string
	Time       *time.Time
}

// DisplayRound returns the round label shown in exports: the explicit label
// when set, otherwise "Q" followed by the question.
func (e Entry) DisplayRound() string {
	if e.RoundLabel != nil && *e.RoundLabel != "" {
		return *e.RoundLabel
	}
	q := ""
	if e.Question != nil {
		q = *e.Question
	}
	return "Q" + q
}

// Order selects the id ordering of a listing.
type Order int

const (
	// Descending lists the most recent entries first.
	Descending Order = iota
	// Ascending lists entries in insertion order.
	Ascending
)
