package api

import (
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/go-chi/chi/v5"

	"github.com/strategiq/scoreboard/internal/api/handler"
	"github.com/strategiq/scoreboard/internal/api/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Ledger         handler.ScoreLedger
	DBPinger       handler.DBPinger
	Auth           middleware.KeyAuthenticator
	Version        string
	ExportFilename string
	OpenAPISpec    []byte
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.Live)
	r.Get("/ready", healthHandler.Ready)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.Ledger == nil {
		return r
	}

	teamHandler := handler.NewTeamHandler(deps.Ledger)
	logHandler := handler.NewLogHandler(deps.Ledger, deps.ExportFilename)
	resetHandler := handler.NewResetHandler(deps.Ledger)

	r.Get("/teams", teamHandler.List)
	r.Get("/scores", teamHandler.Scores)
	r.Get("/questionLogs", logHandler.List)
	r.Get("/downloadSheet", logHandler.Download)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(deps.Auth))

		r.Post("/addTeam", teamHandler.Add)
		r.Post("/logQuestion", logHandler.Log)
		r.Post("/updateLog", logHandler.Update)
		r.Post("/deleteLog", logHandler.Delete)
		r.Post("/resetScores", resetHandler.Scores)
		r.Post("/resetTournament", resetHandler.Tournament)
	})

	return r
}
