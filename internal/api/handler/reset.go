package handler

import (
	"log/slog"
	"net/http"

	"github.com/strategiq/scoreboard/internal/api/middleware"
	"github.com/strategiq/scoreboard/internal/api/response"
)

// ResetHandler handles the bulk reset endpoints.
type ResetHandler struct {
	ledger ScoreLedger
}

// NewResetHandler creates a new ResetHandler.
func NewResetHandler(l ScoreLedger) *ResetHandler {
	return &ResetHandler{ledger: l}
}

// Scores handles POST /resetScores.
func (h *ResetHandler) Scores(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.ResetScores(r.Context()); err != nil {
		writeLedgerError(w, r, err, "Reset failed")
		return
	}

	slog.Info("scores reset", "requestId", middleware.GetRequestID(r.Context()))
	response.Text(w, http.StatusOK, "Scores reset")
}

// Tournament handles POST /resetTournament.
func (h *ResetHandler) Tournament(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.ResetTournament(r.Context()); err != nil {
		writeLedgerError(w, r, err, "Tournament reset failed")
		return
	}

	slog.Info("tournament reset", "requestId", middleware.GetRequestID(r.Context()))
	response.Text(w, http.StatusOK, "Tournament reset")
}
