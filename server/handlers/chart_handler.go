package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"fantasy-stats-web/api"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"
	"fantasy-stats-web/server/views"
	services "fantasy-stats-web/service"
	"fantasy-stats-web/util"

	"github.com/gorilla/mux"
)

// ChartDataSource is the part of the stats API the charts read.
type ChartDataSource interface {
	GetLeague(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.League], error)
	GetPowerRankings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.PowerRanking], error)
	SimulatePlayoffOdds(ctx context.Context, leagueYear, leagueID string, week *int, nSimulations string) (*api.Response[models.SimulationResult], error)
}

// ChartHandler serves go-echarts pages for the league tables that read
// better as bars.
type ChartHandler struct {
	pageResponder
	data   ChartDataSource
	logger *logging.Logger
}

func NewChartHandler(data ChartDataSource, renderer *views.Renderer, boundary *ErrorBoundary) *ChartHandler {
	return &ChartHandler{
		pageResponder: pageResponder{renderer: renderer, boundary: boundary},
		data:          data,
		logger:        logging.For("ChartHandler"),
	}
}

// GetPowerRankingsChart handles
// GET /fantasy_stats/charts/power-rankings/{leagueYear}/{leagueId}/{week}
func (h *ChartHandler) GetPowerRankingsChart(w http.ResponseWriter, r *http.Request) {
	leagueYear, leagueID := leagueVars(r)
	week, err := strconv.Atoi(mux.Vars(r)[WeekVar])
	if err != nil {
		h.render(w, r, http.StatusNotFound, views.NotFoundPage, nil)
		return
	}

	league, err := h.data.GetLeague(r.Context(), leagueYear, leagueID)
	if stopped(h.boundary, w, r, league, err) {
		return
	}
	rankings, err := h.data.GetPowerRankings(r.Context(), leagueYear, leagueID, week)
	if stopped(h.boundary, w, r, rankings, err) {
		return
	}

	var buf bytes.Buffer
	if err := util.PlotPowerRankings(&buf, league.Data.LeagueName, week, rankings.Data); err != nil {
		h.boundary.Fail(w, r, err)
		return
	}
	writeChart(w, &buf, h.logger)
}

// GetPlayoffOddsChart handles
// GET /fantasy_stats/charts/playoff-odds/{leagueYear}/{leagueId}?week={week}&n_simulations={n}
func (h *ChartHandler) GetPlayoffOddsChart(w http.ResponseWriter, r *http.Request) {
	leagueYear, leagueID := leagueVars(r)
	query := r.URL.Query()
	week := services.ParseWeekQuery(query.Get(WeekQueryArg))
	nSimulations := query.Get(SimulationsQueryArg)
	if n, err := strconv.Atoi(nSimulations); err != nil || n <= 0 {
		nSimulations = ""
	}

	simulation, err := h.data.SimulatePlayoffOdds(r.Context(), leagueYear, leagueID, week, nSimulations)
	if stopped(h.boundary, w, r, simulation, err) {
		return
	}

	var buf bytes.Buffer
	if err := util.PlotPlayoffOdds(&buf, nSimulations, simulation.Data.PlayoffOdds); err != nil {
		h.boundary.Fail(w, r, err)
		return
	}
	writeChart(w, &buf, h.logger)
}

// stopped answers the request when a fetch failed or redirected and reports
// whether it did.
func stopped[T any](b *ErrorBoundary, w http.ResponseWriter, r *http.Request, resp *api.Response[T], err error) bool {
	if err != nil {
		b.Fail(w, r, err)
		return true
	}
	if resp.Redirected() {
		http.Redirect(w, r, resp.Redirect, http.StatusFound)
		return true
	}
	return false
}

func writeChart(w http.ResponseWriter, buf *bytes.Buffer, logger *logging.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Error writing chart: %v", err)
	}
}
