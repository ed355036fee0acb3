package services

import (
	"context"
	"strconv"
	"time"

	"fantasy-stats-web/api"
	"fantasy-stats-web/api/fantasystats"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"
)

// SimulationOptions are the simulation counts a visitor can pick.
var SimulationOptions = []string{"100", "250", "500"}

// SimulationPage is everything the playoff simulation page renders.
type SimulationPage struct {
	PageOutcome

	LeagueYear string
	LeagueID   string

	Settings    models.LeagueSettings
	CurrentWeek models.CurrentWeek
	Week        models.WeekSelection

	// NSimulations is the ?n_simulations= value passed to the backend, or ""
	// for the backend default.
	NSimulations string
	OddsPending  bool

	Simulation        models.SimulationResult
	RemainingSchedule []models.RemainingSchedule
}

// SimulationPageService orchestrates the calls behind the simulation page.
type SimulationPageService struct {
	api       fantasystats.FantasyStatsAPI
	preloader preloader
	logger    *logging.Logger
}

// NewSimulationPageService constructs a SimulationPageService.
func NewSimulationPageService(fantasyStatsApi fantasystats.FantasyStatsAPI, preloadTimeout time.Duration) *SimulationPageService {
	logger := logging.For("SimulationPageService")
	return &SimulationPageService{
		api:       fantasyStatsApi,
		preloader: preloader{api: fantasyStatsApi, timeout: preloadTimeout, logger: logger},
		logger:    logger,
	}
}

// BuildSimulationPage loads the simulation page for the request's ?week= and
// ?n_simulations= values. Weeks before MinSimulationWeek redirect to the
// too-early page.
func (s *SimulationPageService) BuildSimulationPage(ctx context.Context, leagueYear, leagueID, rawWeek, rawSimulations string) (*SimulationPage, error) {
	page := &SimulationPage{
		LeagueYear:   leagueYear,
		LeagueID:     leagueID,
		NSimulations: parseSimulations(rawSimulations),
	}

	s.preloader.preload(ctx, leagueYear, leagueID)

	err := s.loadLeague(ctx, page)
	if err == nil {
		err = s.selectWeek(page, rawWeek)
	}
	if err == nil {
		err = s.loadSimulation(ctx, page)
	}
	if err := page.settle(err); err != nil {
		s.logger.Error("Simulation page %s/%s failed: %v", leagueYear, leagueID, err)
		return page, err
	}
	if page.Redirecting() {
		s.logger.Info("Redirecting simulation page %s/%s to %s", leagueYear, leagueID, page.RedirectPath)
	}
	return page, nil
}

func (s *SimulationPageService) loadLeague(ctx context.Context, page *SimulationPage) error {
	calls := newPageCalls(ctx)
	year, id := page.LeagueYear, page.LeagueID

	calls.Go(func(ctx context.Context) error {
		var status models.LeagueStatus
		resp, err := s.api.CheckLeagueStatus(ctx, year, id)
		return fetchInto(&status, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetLeagueSettings(ctx, year, id)
		return fetchInto(&page.Settings, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetCurrentWeek(ctx, year, id)
		return fetchInto(&page.CurrentWeek, resp, err)
	})
	return calls.Wait()
}

// selectWeek caps the current week at the regular season length and
// redirects when either week is too early to simulate.
func (s *SimulationPageService) selectWeek(page *SimulationPage, rawWeek string) error {
	current := ClampWeek(page.CurrentWeek.CurrentWeek, page.Settings.NRegularSeasonWeeks)
	maxWeek := 0
	if current != nil {
		maxWeek = *current
	}
	page.Week = DeriveWeekSelection(rawWeek, current, SimulationWeekOffset, MinSimulationWeek, maxWeek)

	if page.Week.SelectedWeek != nil && current != nil {
		if *page.Week.SelectedWeek < MinSimulationWeek || *current < MinSimulationWeek {
			return redirectTo(api.TooEarlyPath(api.TooEarlyLeaguePage, page.LeagueYear, page.LeagueID))
		}
	}
	if page.Week.SelectedWeek != nil && page.CurrentWeek.NCompletedWeeks != nil {
		page.OddsPending = *page.Week.SelectedWeek > *page.CurrentWeek.NCompletedWeeks
	}
	return nil
}

func (s *SimulationPageService) loadSimulation(ctx context.Context, page *SimulationPage) error {
	if page.Week.SelectedWeek == nil {
		return nil
	}
	week := *page.Week.SelectedWeek
	calls := newPageCalls(ctx)
	year, id := page.LeagueYear, page.LeagueID

	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.SimulatePlayoffOdds(ctx, year, id, &week, page.NSimulations)
		return fetchInto(&page.Simulation, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetRemainingStrengthOfSchedule(ctx, year, id, week)
		return fetchInto(&page.RemainingSchedule, resp, err)
	})
	return calls.Wait()
}

func (p *SimulationPage) SimulationChoices() []string {
	return SimulationOptions
}

// WeekLink returns the simulation page URL for week, keeping the simulation
// count.
func (p *SimulationPage) WeekLink(week int) string {
	link := api.SimulationPagePath(p.LeagueYear, p.LeagueID) + "?week=" + strconv.Itoa(week)
	if p.NSimulations != "" {
		link += "&n_simulations=" + p.NSimulations
	}
	return link
}

// SimulationsLink returns the simulation page URL for n simulations, keeping
// the selected week.
func (p *SimulationPage) SimulationsLink(n string) string {
	link := api.SimulationPagePath(p.LeagueYear, p.LeagueID) + "?n_simulations=" + n
	if p.Week.SelectedWeek != nil {
		link += "&week=" + strconv.Itoa(*p.Week.SelectedWeek)
	}
	return link
}

func parseSimulations(raw string) string {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
