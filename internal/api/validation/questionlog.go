package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Points are stored in a 32-bit integer column.
const (
	MinPoints = math.MinInt32
	MaxPoints = math.MaxInt32
)

func pointsInRange(p int) bool {
	return p >= MinPoints && p <= MaxPoints
}

func pointsRangeError(field string) FieldError {
	return FieldError{Field: field, Message: fmt.Sprintf("%s must be between %d and %d", field, MinPoints, MaxPoints)}
}

// LogQuestionRequest mirrors the fields needed for log question validation.
// Nil Points means the field was absent.
type LogQuestionRequest struct {
	Team       string
	Points     *int
	Question   json.RawMessage
	RoundLabel json.RawMessage
}

// ValidateLogQuestionRequest validates a log question request. A points value
// of zero is valid; only absence is rejected.
func ValidateLogQuestionRequest(req LogQuestionRequest) []FieldError {
	var errs []FieldError

	if req.Team == "" {
		errs = append(errs, FieldError{Field: "team", Message: "team is required"})
	}
	if req.Points == nil {
		errs = append(errs, FieldError{Field: "points", Message: "points is required"})
	} else if !pointsInRange(*req.Points) {
		errs = append(errs, pointsRangeError("points"))
	}
	if _, ok := ParseLabel(req.Question); !ok {
		errs = append(errs, FieldError{Field: "question", Message: "question must be a string or a number"})
	}
	if _, ok := ParseLabel(req.RoundLabel); !ok {
		errs = append(errs, FieldError{Field: "roundLabel", Message: "roundLabel must be a string or a number"})
	}

	return errs
}

// UpdateLogRequest mirrors the fields needed for update log validation.
type UpdateLogRequest struct {
	ID        *int64
	NewPoints *int
}

// ValidateUpdateLogRequest validates an update log request.
func ValidateUpdateLogRequest(req UpdateLogRequest) []FieldError {
	var errs []FieldError

	if req.ID == nil {
		errs = append(errs, FieldError{Field: "id", Message: "id is required"})
	}
	if req.NewPoints == nil {
		errs = append(errs, FieldError{Field: "newPoints", Message: "newPoints is required"})
	} else if !pointsInRange(*req.NewPoints) {
		errs = append(errs, pointsRangeError("newPoints"))
	}

	return errs
}

// DeleteLogRequest mirrors the fields needed for delete log validation.
type DeleteLogRequest struct {
	ID *int64
}

// ValidateDeleteLogRequest validates a delete log request.
func ValidateDeleteLogRequest(req DeleteLogRequest) []FieldError {
	var errs []FieldError

	if req.ID == nil {
		errs = append(errs, FieldError{Field: "id", Message: "id is required"})
	}

	return errs
}

// ParseLabel converts an optional JSON label into text. Absent or null gives
// nil; strings are unquoted and numbers keep their literal form. ok is false
// for any other JSON type.
func ParseLabel(raw json.RawMessage) (label *string, ok bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s, true
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		text := n.String()
		return &text, true
	}

	return nil, false
}
