package services

import (
	"context"
	"sync"
	"time"

	"fantasy-stats-web/api"
	"fantasy-stats-web/models"
)

// fakeAPI answers every call with canned data. Methods listed in redirects or
// failures answer with that instead, after any delay listed for them.
type fakeAPI struct {
	mu        sync.Mutex
	calls     map[string]int
	weeks     map[string]int
	redirects map[string]string
	failures  map[string]error
	delays    map[string]time.Duration

	currentWeek *int
	nCompleted  *int
	settings    models.LeagueSettings
	boxScores   []models.BoxScore
	directory   models.LeagueDirectory
	formResult  models.LeagueFormResult

	preloaded    chan struct{}
	simWeek      *int
	simN         string
	submitted    models.LeagueInput
	copiedLeague string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:       map[string]int{},
		weeks:       map[string]int{},
		redirects:   map[string]string{},
		failures:    map[string]error{},
		delays:      map[string]time.Duration{},
		currentWeek: intPtr(10),
		nCompleted:  intPtr(9),
		settings:    models.LeagueSettings{NRegularSeasonWeeks: intPtr(14), NPlayoffSpots: 4, NTeams: 6},
		boxScores: []models.BoxScore{
			{HomeTeam: "A", HomeScore: 100, AwayTeam: "B", AwayScore: 120},
			{HomeTeam: "C", HomeScore: 80, AwayTeam: "D", AwayScore: 140},
		},
		preloaded: make(chan struct{}, 1),
	}
}

func intPtr(v int) *int {
	return &v
}

func respond[T any](f *fakeAPI, method string, data T) (*api.Response[T], error) {
	f.mu.Lock()
	delay := f.delays[method]
	f.mu.Unlock()
	time.Sleep(delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	if err := f.failures[method]; err != nil {
		return nil, err
	}
	if path := f.redirects[method]; path != "" {
		return &api.Response[T]{Redirect: path}, nil
	}
	return &api.Response[T]{Data: data}, nil
}

func respondForWeek[T any](f *fakeAPI, method string, week int, data T) (*api.Response[T], error) {
	f.mu.Lock()
	f.weeks[method] = week
	f.mu.Unlock()
	return respond(f, method, data)
}

func (f *fakeAPI) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAPI) weekOf(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.weeks[method]
}

func (f *fakeAPI) Preload(ctx context.Context, leagueYear, leagueID string) error {
	_, err := respond(f, "Preload", struct{}{})
	select {
	case f.preloaded <- struct{}{}:
	default:
	}
	return err
}

func (f *fakeAPI) GetLeague(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.League], error) {
	return respond(f, "GetLeague", models.League{LeagueName: "Dorito Dynasty", LeagueYear: 2024, LeagueID: 123})
}

func (f *fakeAPI) CheckLeagueStatus(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueStatus], error) {
	return respond(f, "CheckLeagueStatus", models.LeagueStatus{Status: "ok"})
}

func (f *fakeAPI) GetCurrentWeek(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.CurrentWeek], error) {
	return respond(f, "GetCurrentWeek", models.CurrentWeek{CurrentWeek: f.currentWeek, NCompletedWeeks: f.nCompleted})
}

func (f *fakeAPI) GetLeagueSettings(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueSettings], error) {
	return respond(f, "GetLeagueSettings", f.settings)
}

func (f *fakeAPI) GetBoxScores(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.BoxScore], error) {
	return respondForWeek(f, "GetBoxScores", week, f.boxScores)
}

func (f *fakeAPI) GetWeeklyAwards(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[models.WeeklyAwards], error) {
	return respondForWeek(f, "GetWeeklyAwards", week, models.WeeklyAwards{BestAwards: [][]string{{"Boss Move", "A"}}})
}

func (f *fakeAPI) GetPowerRankings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.PowerRanking], error) {
	return respondForWeek(f, "GetPowerRankings", week, []models.PowerRanking{{Team: "A", Value: 1.2}})
}

func (f *fakeAPI) GetLuckIndex(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.LuckIndexEntry], error) {
	return respondForWeek(f, "GetLuckIndex", week, []models.LuckIndexEntry{{Team: "A", Text: "+1 win"}})
}

func (f *fakeAPI) GetNaughtyList(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.NaughtyListEntry], error) {
	return respondForWeek(f, "GetNaughtyList", week, []models.NaughtyListEntry{})
}

func (f *fakeAPI) GetStandings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.Standing], error) {
	return respondForWeek(f, "GetStandings", week, []models.Standing{{Team: "A", Wins: 5}})
}

func (f *fakeAPI) SimulatePlayoffOdds(ctx context.Context, leagueYear, leagueID string, week *int, nSimulations string) (*api.Response[models.SimulationResult], error) {
	f.mu.Lock()
	f.simWeek = week
	f.simN = nSimulations
	f.mu.Unlock()
	return respond(f, "SimulatePlayoffOdds", models.SimulationResult{PlayoffOdds: []models.PlayoffOdds{{Team: "A", PlayoffOdds: 0.5}}})
}

func (f *fakeAPI) GetRemainingStrengthOfSchedule(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.RemainingSchedule], error) {
	return respondForWeek(f, "GetRemainingStrengthOfSchedule", week, []models.RemainingSchedule{{Team: "A"}})
}

func (f *fakeAPI) GetSeasonRecords(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.SeasonRecords], error) {
	return respond(f, "GetSeasonRecords", models.SeasonRecords{BestTeamStats: []models.SeasonStat{{Label: "Most points", Owner: "Pat", Value: 160.2}}})
}

func (f *fakeAPI) GetLeagues(ctx context.Context) (*api.Response[models.LeagueDirectory], error) {
	return respond(f, "GetLeagues", f.directory)
}

func (f *fakeAPI) GetDistinctLeaguesPrevious(ctx context.Context) (*api.Response[[]models.LeagueSummary], error) {
	return respond(f, "GetDistinctLeaguesPrevious", []models.LeagueSummary{{LeagueID: 9, LeagueYear: 2023, LeagueName: "Old"}})
}

func (f *fakeAPI) SubmitLeague(ctx context.Context, input models.LeagueInput) (*api.Response[models.LeagueFormResult], error) {
	f.mu.Lock()
	f.submitted = input
	f.mu.Unlock()
	return respond(f, "SubmitLeague", f.formResult)
}

func (f *fakeAPI) CopyOldLeague(ctx context.Context, leagueID string) (*api.Response[models.LeagueFormResult], error) {
	f.mu.Lock()
	f.copiedLeague = leagueID
	f.mu.Unlock()
	return respond(f, "CopyOldLeague", f.formResult)
}
