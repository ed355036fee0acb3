package handlers

import (
	"context"
	"net/http"

	"fantasy-stats-web/server/views"
	services "fantasy-stats-web/service"
)

type LeaguePageBuilder interface {
	BuildLeaguePage(ctx context.Context, leagueYear, leagueID, rawWeek string) (*services.LeaguePage, error)
}

type SimulationPageBuilder interface {
	BuildSimulationPage(ctx context.Context, leagueYear, leagueID, rawWeek, rawSimulations string) (*services.SimulationPage, error)
}

type RecordsPageBuilder interface {
	BuildRecordsPage(ctx context.Context, leagueYear, leagueID string) (*services.RecordsPage, error)
}

// LeagueHandler serves the pages of a single league.
type LeagueHandler struct {
	pageResponder
	leaguePages     LeaguePageBuilder
	simulationPages SimulationPageBuilder
	recordsPages    RecordsPageBuilder
}

func NewLeagueHandler(
	leaguePages LeaguePageBuilder,
	simulationPages SimulationPageBuilder,
	recordsPages RecordsPageBuilder,
	renderer *views.Renderer,
	boundary *ErrorBoundary) *LeagueHandler {
	return &LeagueHandler{
		pageResponder:   pageResponder{renderer: renderer, boundary: boundary},
		leaguePages:     leaguePages,
		simulationPages: simulationPages,
		recordsPages:    recordsPages,
	}
}

// GetLeaguePage handles GET /fantasy_stats/league/{leagueYear}/{leagueId}?week={week}
func (h *LeagueHandler) GetLeaguePage(w http.ResponseWriter, r *http.Request) {
	leagueYear, leagueID := leagueVars(r)
	page, err := h.leaguePages.BuildLeaguePage(r.Context(), leagueYear, leagueID, r.URL.Query().Get(WeekQueryArg))
	h.respond(w, r, views.LeaguePage, page, err)
}

// GetSimulationPage handles
// GET /fantasy_stats/simulation/{leagueYear}/{leagueId}?week={week}&n_simulations={n}
func (h *LeagueHandler) GetSimulationPage(w http.ResponseWriter, r *http.Request) {
	leagueYear, leagueID := leagueVars(r)
	query := r.URL.Query()
	page, err := h.simulationPages.BuildSimulationPage(r.Context(), leagueYear, leagueID, query.Get(WeekQueryArg), query.Get(SimulationsQueryArg))
	h.respond(w, r, views.SimulationPage, page, err)
}

// GetRecordsPage handles GET /fantasy_stats/league-records/{leagueYear}/{leagueId}
func (h *LeagueHandler) GetRecordsPage(w http.ResponseWriter, r *http.Request) {
	leagueYear, leagueID := leagueVars(r)
	page, err := h.recordsPages.BuildRecordsPage(r.Context(), leagueYear, leagueID)
	h.respond(w, r, views.RecordsPage, page, err)
}
