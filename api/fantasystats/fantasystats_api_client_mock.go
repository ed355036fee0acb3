package fantasystats

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"fantasy-stats-web/api"
	"fantasy-stats-web/models"
	"fantasy-stats-web/util"
)

// Fixture file names under the resources directory.
const (
	LeagueResource              = "league.json"
	LeagueStatusResource        = "league_status.json"
	CurrentWeekResource         = "current_week.json"
	LeagueSettingsResource      = "league_settings.json"
	BoxScoresResource           = "box_scores.json"
	WeeklyAwardsResource        = "weekly_awards.json"
	PowerRankingsResource       = "power_rankings.json"
	LuckIndexResource           = "luck_index.json"
	NaughtyListResource         = "naughty_list.json"
	StandingsResource           = "standings.json"
	SimulationResource          = "simulation.json"
	RemainingScheduleResource   = "remaining_sos.json"
	SeasonRecordsResource       = "season_records.json"
	LeaguesResource             = "leagues.json"
	DistinctLeaguesPrevResource = "distinct_leagues_previous.json"
	LeagueFormResultResource    = "league_form_result.json"
)

// FantasyStatsApiClientMock serves canned responses from JSON fixtures.
type FantasyStatsApiClientMock struct {
	resourcesDir string
}

// NewFantasyStatsApiClientMock creates a mock reading fixtures from resourcesDir.
func NewFantasyStatsApiClientMock(resourcesDir string) *FantasyStatsApiClientMock {
	return &FantasyStatsApiClientMock{resourcesDir: resourcesDir}
}

func readFixture[T any](c *FantasyStatsApiClientMock, resource string) (*api.Response[T], error) {
	data, err := util.ReadJSONFile[T](filepath.Join(c.resourcesDir, resource))
	if err != nil {
		return nil, fmt.Errorf("could not read fixture %s: %w", resource, err)
	}
	return &api.Response[T]{Data: *data}, nil
}

func (c *FantasyStatsApiClientMock) Preload(ctx context.Context, leagueYear, leagueID string) error {
	return nil
}

// GetLeague returns the league fixture renamed to the requested year and id.
func (c *FantasyStatsApiClientMock) GetLeague(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.League], error) {
	resp, err := readFixture[models.League](c, LeagueResource)
	if err != nil {
		return nil, err
	}
	if year, err := strconv.Atoi(leagueYear); err == nil {
		resp.Data.LeagueYear = year
	}
	if id, err := strconv.ParseInt(leagueID, 10, 64); err == nil {
		resp.Data.LeagueID = id
	}
	return resp, nil
}

func (c *FantasyStatsApiClientMock) CheckLeagueStatus(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueStatus], error) {
	return readFixture[models.LeagueStatus](c, LeagueStatusResource)
}

func (c *FantasyStatsApiClientMock) GetCurrentWeek(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.CurrentWeek], error) {
	return readFixture[models.CurrentWeek](c, CurrentWeekResource)
}

func (c *FantasyStatsApiClientMock) GetLeagueSettings(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueSettings], error) {
	return readFixture[models.LeagueSettings](c, LeagueSettingsResource)
}

func (c *FantasyStatsApiClientMock) GetBoxScores(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.BoxScore], error) {
	return readFixture[[]models.BoxScore](c, BoxScoresResource)
}

func (c *FantasyStatsApiClientMock) GetWeeklyAwards(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[models.WeeklyAwards], error) {
	return readFixture[models.WeeklyAwards](c, WeeklyAwardsResource)
}

func (c *FantasyStatsApiClientMock) GetPowerRankings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.PowerRanking], error) {
	return readFixture[[]models.PowerRanking](c, PowerRankingsResource)
}

func (c *FantasyStatsApiClientMock) GetLuckIndex(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.LuckIndexEntry], error) {
	return readFixture[[]models.LuckIndexEntry](c, LuckIndexResource)
}

func (c *FantasyStatsApiClientMock) GetNaughtyList(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.NaughtyListEntry], error) {
	return readFixture[[]models.NaughtyListEntry](c, NaughtyListResource)
}

func (c *FantasyStatsApiClientMock) GetStandings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.Standing], error) {
	return readFixture[[]models.Standing](c, StandingsResource)
}

func (c *FantasyStatsApiClientMock) SimulatePlayoffOdds(ctx context.Context, leagueYear, leagueID string, week *int, nSimulations string) (*api.Response[models.SimulationResult], error) {
	return readFixture[models.SimulationResult](c, SimulationResource)
}

func (c *FantasyStatsApiClientMock) GetRemainingStrengthOfSchedule(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.RemainingSchedule], error) {
	return readFixture[[]models.RemainingSchedule](c, RemainingScheduleResource)
}

func (c *FantasyStatsApiClientMock) GetSeasonRecords(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.SeasonRecords], error) {
	return readFixture[models.SeasonRecords](c, SeasonRecordsResource)
}

func (c *FantasyStatsApiClientMock) GetLeagues(ctx context.Context) (*api.Response[models.LeagueDirectory], error) {
	return readFixture[models.LeagueDirectory](c, LeaguesResource)
}

func (c *FantasyStatsApiClientMock) GetDistinctLeaguesPrevious(ctx context.Context) (*api.Response[[]models.LeagueSummary], error) {
	return readFixture[[]models.LeagueSummary](c, DistinctLeaguesPrevResource)
}

func (c *FantasyStatsApiClientMock) SubmitLeague(ctx context.Context, input models.LeagueInput) (*api.Response[models.LeagueFormResult], error) {
	return &api.Response[models.LeagueFormResult]{Data: models.LeagueFormResult{
		Success:     true,
		RedirectURL: api.LeaguePagePath(strconv.Itoa(input.LeagueYear), input.LeagueID),
	}}, nil
}

func (c *FantasyStatsApiClientMock) CopyOldLeague(ctx context.Context, leagueID string) (*api.Response[models.LeagueFormResult], error) {
	return readFixture[models.LeagueFormResult](c, LeagueFormResultResource)
}
