package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fantasy-stats-web/api"
	"fantasy-stats-web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChartData struct {
	redirect string
	err      error
	gotWeek  *int
	gotN     string
}

func (f *fakeChartData) GetLeague(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.League], error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.Response[models.League]{Data: models.League{LeagueName: "The Dorito Bowl"}, Redirect: f.redirect}, nil
}

func (f *fakeChartData) GetPowerRankings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.PowerRanking], error) {
	f.gotWeek = &week
	return &api.Response[[]models.PowerRanking]{Data: []models.PowerRanking{{Team: "Team A", Owner: "Pat", Value: 91.2}}}, nil
}

func (f *fakeChartData) SimulatePlayoffOdds(ctx context.Context, leagueYear, leagueID string, week *int, nSimulations string) (*api.Response[models.SimulationResult], error) {
	f.gotWeek, f.gotN = week, nSimulations
	if f.err != nil {
		return nil, f.err
	}
	return &api.Response[models.SimulationResult]{
		Data:     models.SimulationResult{PlayoffOdds: []models.PlayoffOdds{{Team: "Team A", PlayoffOdds: 87.5}}},
		Redirect: f.redirect,
	}, nil
}

func newChartHandler(t *testing.T, data *fakeChartData) *ChartHandler {
	boundary, renderer := newTestBoundary(t)
	return NewChartHandler(data, renderer, boundary)
}

func TestChartHandler_GetPowerRankingsChart(t *testing.T) {
	data := &fakeChartData{}
	req := withVars(httptest.NewRequest(http.MethodGet, "/fantasy_stats/charts/power-rankings/2024/123/7", nil),
		map[string]string{LeagueYearVar: "2024", LeagueIDVar: "123", WeekVar: "7"})
	rr := httptest.NewRecorder()

	newChartHandler(t, data).GetPowerRankingsChart(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "The Dorito Bowl Power Rankings")
	require.NotNil(t, data.gotWeek)
	assert.Equal(t, 7, *data.gotWeek)
}

func TestChartHandler_GetPowerRankingsChart_Stops(t *testing.T) {
	tests := []struct {
		name         string
		data         *fakeChartData
		wantStatus   int
		wantLocation string
	}{
		{"redirect", &fakeChartData{redirect: api.InvalidLeaguePath}, http.StatusFound, api.InvalidLeaguePath},
		{"failure", &fakeChartData{err: &api.FetchError{Kind: api.FailureHTTP, StatusCode: 502}}, http.StatusInternalServerError, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := withVars(httptest.NewRequest(http.MethodGet, "/fantasy_stats/charts/power-rankings/2024/123/7", nil),
				map[string]string{LeagueYearVar: "2024", LeagueIDVar: "123", WeekVar: "7"})
			rr := httptest.NewRecorder()

			newChartHandler(t, test.data).GetPowerRankingsChart(rr, req)

			assert.Equal(t, test.wantStatus, rr.Code)
			assert.Equal(t, test.wantLocation, rr.Header().Get("Location"))
			assert.Nil(t, test.data.gotWeek, "rankings are not fetched once the league stops the chart")
		})
	}
}

func TestChartHandler_GetPlayoffOddsChart(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantWeek *int
		wantN    string
	}{
		{"week and simulations", "/fantasy_stats/charts/playoff-odds/2024/123?week=6&n_simulations=250", intPtr(6), "250"},
		{"defaults", "/fantasy_stats/charts/playoff-odds/2024/123", nil, ""},
		{"invalid simulations", "/fantasy_stats/charts/playoff-odds/2024/123?n_simulations=lots", nil, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data := &fakeChartData{}
			rr := httptest.NewRecorder()

			newChartHandler(t, data).GetPlayoffOddsChart(rr, leagueRequest(http.MethodGet, test.target))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), "Playoff Odds")
			assert.Equal(t, test.wantWeek, data.gotWeek)
			assert.Equal(t, test.wantN, data.gotN)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
