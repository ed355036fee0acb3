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

// Simulation counts linked from the league page.
const (
	SimulationsSeasonComplete   = 50
	SimulationsSeasonInProgress = 100
)

// LeaguePage is everything the league page renders for one request.
type LeaguePage struct {
	PageOutcome

	LeagueYear string
	LeagueID   string

	League      models.League
	Status      models.LeagueStatus
	Settings    models.LeagueSettings
	CurrentWeek models.CurrentWeek
	Week        models.WeekSelection

	// NSimulations is sent by the simulate playoff odds link.
	NSimulations int
	// ScoresPending is set while the selected week's scores are not final.
	ScoresPending bool

	BoxScores     Section[[]models.BoxScore]
	WeeklyAwards  Section[models.WeeklyAwards]
	PowerRankings Section[[]models.PowerRanking]
	LuckIndex     Section[[]models.LuckIndexEntry]
	NaughtyList   Section[[]models.NaughtyListEntry]
	Standings     Section[[]models.Standing]
	Summary       *BoxScoreSummary
}

// LeaguePageService orchestrates the calls behind the league page.
type LeaguePageService struct {
	api           fantasystats.FantasyStatsAPI
	recentLeagues RecentLeagueStore
	preloader     preloader
	logger        *logging.Logger
	now           func() time.Time
}

// NewLeaguePageService constructs a LeaguePageService. recentLeagues may be
// nil, in which case visits are not recorded.
func NewLeaguePageService(
	fantasyStatsApi fantasystats.FantasyStatsAPI,
	recentLeagues RecentLeagueStore,
	preloadTimeout time.Duration) *LeaguePageService {

	logger := logging.For("LeaguePageService")
	return &LeaguePageService{
		api:           fantasyStatsApi,
		recentLeagues: recentLeagues,
		preloader:     preloader{api: fantasyStatsApi, timeout: preloadTimeout, logger: logger},
		logger:        logger,
		now:           time.Now,
	}
}

// BuildLeaguePage loads the league page for rawWeek, the request's ?week=
// value. The returned error is the first failure of a page-level call; a
// redirect is reported through the page's state instead.
func (s *LeaguePageService) BuildLeaguePage(ctx context.Context, leagueYear, leagueID, rawWeek string) (*LeaguePage, error) {
	page := &LeaguePage{LeagueYear: leagueYear, LeagueID: leagueID}

	s.preloader.preload(ctx, leagueYear, leagueID)

	err := s.loadLeague(ctx, page)
	if err == nil {
		err = s.loadTables(ctx, page, rawWeek)
	}
	if err := page.settle(err); err != nil {
		s.logger.Error("League page %s/%s failed: %v", leagueYear, leagueID, err)
		return page, err
	}

	if page.Redirecting() {
		s.logger.Info("Redirecting league page %s/%s to %s", leagueYear, leagueID, page.RedirectPath)
		if page.RedirectPath == api.InvalidLeaguePath {
			s.forget(leagueYear, leagueID)
		}
		return page, nil
	}

	s.record(page)
	return page, nil
}

// loadLeague fetches the league-wide data. Each call fills its own field.
func (s *LeaguePageService) loadLeague(ctx context.Context, page *LeaguePage) error {
	calls := newPageCalls(ctx)
	year, id := page.LeagueYear, page.LeagueID

	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.CheckLeagueStatus(ctx, year, id)
		return fetchInto(&page.Status, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetLeague(ctx, year, id)
		return fetchInto(&page.League, resp, err)
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

// loadTables derives the selected week and fetches every weekly table for it.
func (s *LeaguePageService) loadTables(ctx context.Context, page *LeaguePage, rawWeek string) error {
	maxWeek := 0
	if page.CurrentWeek.CurrentWeek != nil {
		maxWeek = *page.CurrentWeek.CurrentWeek
	}
	page.Week = DeriveWeekSelection(rawWeek, page.CurrentWeek.CurrentWeek, LeagueWeekOffset, 1, maxWeek)

	page.NSimulations = SimulationsSeasonInProgress
	if page.Settings.RegularSeasonComplete {
		page.NSimulations = SimulationsSeasonComplete
	}

	if page.Week.SelectedWeek == nil {
		return nil
	}
	week := *page.Week.SelectedWeek
	if completed := page.CurrentWeek.NCompletedWeeks; completed != nil {
		page.ScoresPending = week > *completed
	}

	calls := newPageCalls(ctx)
	year, id := page.LeagueYear, page.LeagueID

	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetBoxScores(ctx, year, id, week)
		return loadSection(&page.BoxScores, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetWeeklyAwards(ctx, year, id, week)
		return loadSection(&page.WeeklyAwards, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetPowerRankings(ctx, year, id, week)
		return loadSection(&page.PowerRankings, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetLuckIndex(ctx, year, id, week)
		return loadSection(&page.LuckIndex, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetNaughtyList(ctx, year, id, week)
		return loadSection(&page.NaughtyList, resp, err)
	})
	calls.Go(func(ctx context.Context) error {
		resp, err := s.api.GetStandings(ctx, year, id, week)
		return loadSection(&page.Standings, resp, err)
	})
	if err := calls.Wait(); err != nil {
		return err
	}

	for name, sectionErr := range map[string]error{
		"box scores":     page.BoxScores.Err,
		"weekly awards":  page.WeeklyAwards.Err,
		"power rankings": page.PowerRankings.Err,
		"luck index":     page.LuckIndex.Err,
		"naughty list":   page.NaughtyList.Err,
		"standings":      page.Standings.Err,
	} {
		if sectionErr != nil {
			s.logger.Warn("Week %d %s unavailable for %s/%s: %v", week, name, year, id, sectionErr)
		}
	}

	if !page.BoxScores.Unavailable() {
		summary, err := SummarizeBoxScores(page.BoxScores.Data)
		if err != nil {
			s.logger.Warn("Could not summarize box scores: %v", err)
		}
		page.Summary = summary
	}
	return nil
}

func (s *LeaguePageService) record(page *LeaguePage) {
	if s.recentLeagues == nil {
		return
	}
	entry := models.RecentLeague{
		LeagueYear: page.LeagueYear,
		LeagueID:   page.LeagueID,
		LeagueName: page.League.LeagueName,
		ViewedAt:   s.now().Unix(),
	}
	if err := s.recentLeagues.Record(entry); err != nil {
		s.logger.Warn("Could not record recent league %s/%s: %v", page.LeagueYear, page.LeagueID, err)
	}
}

func (s *LeaguePageService) forget(leagueYear, leagueID string) {
	if s.recentLeagues == nil {
		return
	}
	if err := s.recentLeagues.Forget(leagueYear, leagueID); err != nil {
		s.logger.Warn("Could not forget league %s/%s: %v", leagueYear, leagueID, err)
	}
}

// WeekLink returns the league page URL for week.
func (p *LeaguePage) WeekLink(week int) string {
	return api.LeaguePagePath(p.LeagueYear, p.LeagueID) + "?week=" + strconv.Itoa(week)
}
