package handler

import (
	"net/http"

	"github.com/strategiq/scoreboard/internal/api/response"
	"github.com/strategiq/scoreboard/internal/api/validation"
)

type addTeamRequest struct {
	Name string `json:"name"`
}

type teamNameResponse struct {
	Name string `json:"name"`
}

type scoreResponse struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// TeamHandler handles team registration and leaderboard endpoints.
type TeamHandler struct {
	ledger ScoreLedger
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(l ScoreLedger) *TeamHandler {
	return &TeamHandler{ledger: l}
}

// Add handles POST /addTeam.
func (h *TeamHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addTeamRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.ValidateAddTeamRequest(validation.AddTeamRequest{Name: req.Name}); len(fieldErrors) > 0 {
		writeValidationErrors(w, r, fieldErrors)
		return
	}

	if err := h.ledger.AddTeam(r.Context(), req.Name); err != nil {
		writeLedgerError(w, r, err, "Failed to add team")
		return
	}

	response.Text(w, http.StatusOK, "Team added")
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.ledger.ListTeams(r.Context())
	if err != nil {
		writeLedgerError(w, r, err, "Failed to fetch teams")
		return
	}

	items := make([]teamNameResponse, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamNameResponse{Name: t.Name})
	}

	response.JSON(w, http.StatusOK, items)
}

// Scores handles GET /scores.
func (h *TeamHandler) Scores(w http.ResponseWriter, r *http.Request) {
	teams, err := h.ledger.ListScores(r.Context())
	if err != nil {
		writeLedgerError(w, r, err, "Failed to fetch scores")
		return
	}

	items := make([]scoreResponse, 0, len(teams))
	for _, t := range teams {
		items = append(items, scoreResponse{Name: t.Name, Score: t.Score})
	}

	response.JSON(w, http.StatusOK, items)
}
