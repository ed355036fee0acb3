package fantasystats

import (
	"context"

	"fantasy-stats-web/api"
	"fantasy-stats-web/models"
)

// FantasyStatsAPI defines the interface for interacting with the stats backend.
// Every call returns either data or a redirect; failures are errors.
type FantasyStatsAPI interface {
	Preload(ctx context.Context, leagueYear, leagueID string) error
	GetLeague(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.League], error)
	CheckLeagueStatus(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueStatus], error)
	GetCurrentWeek(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.CurrentWeek], error)
	GetLeagueSettings(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueSettings], error)

	GetBoxScores(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.BoxScore], error)
	GetWeeklyAwards(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[models.WeeklyAwards], error)
	GetPowerRankings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.PowerRanking], error)
	GetLuckIndex(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.LuckIndexEntry], error)
	GetNaughtyList(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.NaughtyListEntry], error)
	GetStandings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.Standing], error)

	SimulatePlayoffOdds(ctx context.Context, leagueYear, leagueID string, week *int, nSimulations string) (*api.Response[models.SimulationResult], error)
	GetRemainingStrengthOfSchedule(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.RemainingSchedule], error)
	GetSeasonRecords(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.SeasonRecords], error)

	GetLeagues(ctx context.Context) (*api.Response[models.LeagueDirectory], error)
	GetDistinctLeaguesPrevious(ctx context.Context) (*api.Response[[]models.LeagueSummary], error)
	SubmitLeague(ctx context.Context, input models.LeagueInput) (*api.Response[models.LeagueFormResult], error)
	CopyOldLeague(ctx context.Context, leagueID string) (*api.Response[models.LeagueFormResult], error)
}
