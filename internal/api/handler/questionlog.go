package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/strategiq/scoreboard/internal/api/middleware"
	"github.com/strategiq/scoreboard/internal/api/response"
	"github.com/strategiq/scoreboard/internal/api/validation"
	"github.com/strategiq/scoreboard/internal/export"
	"github.com/strategiq/scoreboard/internal/ledger"
	"github.com/strategiq/scoreboard/internal/questionlog"
)

type logQuestionRequest struct {
	Question   json.RawMessage `json:"question"`
	Team       string          `json:"team"`
	Points     *int            `json:"points"`
	RoundLabel json.RawMessage `json:"roundLabel"`
}

type updateLogRequest struct {
	ID        *int64 `json:"id"`
	NewPoints *int   `json:"newPoints"`
}

type deleteLogRequest struct {
	ID *int64 `json:"id"`
}

// logResponse mirrors a question_logs row.
type logResponse struct {
	ID         int64   `json:"id"`
	Question   *string `json:"question"`
	Team       string  `json:"team"`
	Points     int     `json:"points"`
	RoundLabel *string `json:"round_label"`
	Time       *string `json:"time"`
}

func toLogResponse(e *questionlog.Entry) logResponse {
	resp := logResponse{
		ID:         e.ID,
		Question:   e.Question,
		Team:       e.Team,
		Points:     e.Points,
		RoundLabel: e.RoundLabel,
	}
	if e.Time != nil {
		ts := e.Time.UTC().Format("2006-01-02T15:04:05.000Z")
		resp.Time = &ts
	}
	return resp
}

// LogHandler handles question log endpoints.
type LogHandler struct {
	ledger         ScoreLedger
	exportFilename string
}

// NewLogHandler creates a new LogHandler. exportFilename names the CSV attachment.
func NewLogHandler(l ScoreLedger, exportFilename string) *LogHandler {
	return &LogHandler{ledger: l, exportFilename: exportFilename}
}

// Log handles POST /logQuestion.
func (h *LogHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fieldErrors := validation.ValidateLogQuestionRequest(validation.LogQuestionRequest{
		Team:       req.Team,
		Points:     req.Points,
		Question:   req.Question,
		RoundLabel: req.RoundLabel,
	})
	if len(fieldErrors) > 0 {
		writeValidationErrors(w, r, fieldErrors)
		return
	}

	question, _ := validation.ParseLabel(req.Question)
	roundLabel, _ := validation.ParseLabel(req.RoundLabel)

	_, err := h.ledger.LogQuestion(r.Context(), ledger.LogInput{
		Question:   question,
		Team:       req.Team,
		Points:     req.Points,
		RoundLabel: roundLabel,
	})
	if err != nil {
		writeLedgerError(w, r, err, "Failed to log question")
		return
	}

	response.Text(w, http.StatusOK, "Logged")
}

// Update handles POST /updateLog.
func (h *LogHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fieldErrors := validation.ValidateUpdateLogRequest(validation.UpdateLogRequest{ID: req.ID, NewPoints: req.NewPoints})
	if len(fieldErrors) > 0 {
		writeValidationErrors(w, r, fieldErrors)
		return
	}

	if err := h.ledger.EditLogPoints(r.Context(), *req.ID, *req.NewPoints); err != nil {
		writeLedgerError(w, r, err, "Update failed")
		return
	}

	response.Text(w, http.StatusOK, "Updated")
}

// Delete handles POST /deleteLog.
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.ValidateDeleteLogRequest(validation.DeleteLogRequest{ID: req.ID}); len(fieldErrors) > 0 {
		writeValidationErrors(w, r, fieldErrors)
		return
	}

	if err := h.ledger.DeleteLog(r.Context(), *req.ID); err != nil {
		writeLedgerError(w, r, err, "Delete failed")
		return
	}

	response.Text(w, http.StatusOK, "Deleted")
}

// List handles GET /questionLogs.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.ListLogs(r.Context())
	if err != nil {
		writeLedgerError(w, r, err, "Failed to fetch logs")
		return
	}

	items := make([]logResponse, 0, len(entries))
	for i := range entries {
		items = append(items, toLogResponse(&entries[i]))
	}

	response.JSON(w, http.StatusOK, items)
}

// Download handles GET /downloadSheet.
func (h *LogHandler) Download(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.ExportLogs(r.Context())
	if err != nil {
		writeLedgerError(w, r, err, "CSV generation failed")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSheet(&buf, entries); err != nil {
		writeLedgerError(w, r, err, "CSV generation failed")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write sheet", "error", err, "requestId", middleware.GetRequestID(r.Context()))
	}
}
