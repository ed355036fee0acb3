package fantasystats

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fantasy-stats-web/api"
	"fantasy-stats-web/models"
)

const (
	leagueEndpointFormat         = "/api/league/%s/%s/"
	leagueStatusEndpointFormat   = "/api/check-league-status/%s/%s/"
	currentWeekEndpointFormat    = "/api/league/%s/%s/current-week/"
	leagueSettingsEndpointFormat = "/api/league-settings/%s/%s/"
	boxScoresEndpointFormat      = "/api/box-scores/%s/%s/%d/"
	weeklyAwardsEndpointFormat   = "/api/weekly-awards/%s/%s/%d/"
	powerRankingsEndpointFormat  = "/api/power-rankings/%s/%s/%d/"
	luckIndexEndpointFormat      = "/api/luck-index/%s/%s/%d/"
	naughtyListEndpointFormat    = "/api/naughty-list/%s/%s/%d/"
	standingsEndpointFormat      = "/api/standings/%s/%s/%d/"
	simulationEndpointFormat     = "/api/simulate-playoff-odds/%s/%s/"
	remainingSOSEndpointFormat   = "/api/remaining-strength-of-schedule/%s/%s/"
	seasonRecordsEndpointFormat  = "/api/season-records/%s/%s/"
	copyOldLeagueEndpointFormat  = "/api/copy-old-league/%s/"

	LeaguesEndpoint                 = "/api/leagues/"
	DistinctLeaguesPreviousEndpoint = "/api/distinct-leagues-previous/"
	LeagueInputEndpoint             = "/api/league-input/"
	CSRFTokenEndpoint               = "/api/get-csrf-token/"

	CSRFCookieName = "csrftoken"
	CSRFHeaderName = "X-CSRFToken"
)

// FantasyStatsApiClient embeds the common HTTPClient and issues every call
// through SafeFetch with the configured retry count.
type FantasyStatsApiClient struct {
	*api.HTTPClient
	retryCount int
	verbose    bool
}

// NewFantasyStatsApiClient creates a new instance of FantasyStatsApiClient
func NewFantasyStatsApiClient(httpClient *api.HTTPClient, retryCount int, verbose bool) *FantasyStatsApiClient {
	return &FantasyStatsApiClient{
		HTTPClient: httpClient,
		retryCount: retryCount,
		verbose:    verbose,
	}
}

func fetch[T any](ctx context.Context, c *FantasyStatsApiClient, endpoint string, opts *api.RequestOptions) (*api.Response[T], error) {
	outcome, err := c.SafeFetch(ctx, endpoint, opts, c.verbose, c.retryCount)
	if err != nil {
		return nil, err
	}
	return api.DecodeResponse[T](outcome)
}

// Preload asks the backend to warm its league object. Callers ignore the
// result; it is only reported for logging.
func (c *FantasyStatsApiClient) Preload(ctx context.Context, leagueYear, leagueID string) error {
	_, err := c.SafeFetch(ctx, fmt.Sprintf(leagueEndpointFormat, leagueYear, leagueID), nil, c.verbose, c.retryCount)
	return err
}

func (c *FantasyStatsApiClient) GetLeague(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.League], error) {
	return fetch[models.League](ctx, c, fmt.Sprintf(leagueEndpointFormat, leagueYear, leagueID), nil)
}

func (c *FantasyStatsApiClient) CheckLeagueStatus(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueStatus], error) {
	return fetch[models.LeagueStatus](ctx, c, fmt.Sprintf(leagueStatusEndpointFormat, leagueYear, leagueID), nil)
}

func (c *FantasyStatsApiClient) GetCurrentWeek(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.CurrentWeek], error) {
	return fetch[models.CurrentWeek](ctx, c, fmt.Sprintf(currentWeekEndpointFormat, leagueYear, leagueID), nil)
}

func (c *FantasyStatsApiClient) GetLeagueSettings(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.LeagueSettings], error) {
	return fetch[models.LeagueSettings](ctx, c, fmt.Sprintf(leagueSettingsEndpointFormat, leagueYear, leagueID), nil)
}

func (c *FantasyStatsApiClient) GetBoxScores(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.BoxScore], error) {
	return fetch[[]models.BoxScore](ctx, c, fmt.Sprintf(boxScoresEndpointFormat, leagueYear, leagueID, week), nil)
}

func (c *FantasyStatsApiClient) GetWeeklyAwards(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[models.WeeklyAwards], error) {
	return fetch[models.WeeklyAwards](ctx, c, fmt.Sprintf(weeklyAwardsEndpointFormat, leagueYear, leagueID, week), nil)
}

func (c *FantasyStatsApiClient) GetPowerRankings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.PowerRanking], error) {
	return fetch[[]models.PowerRanking](ctx, c, fmt.Sprintf(powerRankingsEndpointFormat, leagueYear, leagueID, week), nil)
}

func (c *FantasyStatsApiClient) GetLuckIndex(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.LuckIndexEntry], error) {
	return fetch[[]models.LuckIndexEntry](ctx, c, fmt.Sprintf(luckIndexEndpointFormat, leagueYear, leagueID, week), nil)
}

func (c *FantasyStatsApiClient) GetNaughtyList(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.NaughtyListEntry], error) {
	return fetch[[]models.NaughtyListEntry](ctx, c, fmt.Sprintf(naughtyListEndpointFormat, leagueYear, leagueID, week), nil)
}

func (c *FantasyStatsApiClient) GetStandings(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.Standing], error) {
	return fetch[[]models.Standing](ctx, c, fmt.Sprintf(standingsEndpointFormat, leagueYear, leagueID, week), nil)
}

// SimulatePlayoffOdds runs the backend simulation. week and nSimulations are
// only sent when set.
func (c *FantasyStatsApiClient) SimulatePlayoffOdds(ctx context.Context, leagueYear, leagueID string, week *int, nSimulations string) (*api.Response[models.SimulationResult], error) {
	query := url.Values{}
	if nSimulations != "" {
		query.Set("n_simulations", nSimulations)
	}
	if week != nil {
		query.Set("week", strconv.Itoa(*week))
	}
	return fetch[models.SimulationResult](ctx, c, withQuery(fmt.Sprintf(simulationEndpointFormat, leagueYear, leagueID), query), nil)
}

func (c *FantasyStatsApiClient) GetRemainingStrengthOfSchedule(ctx context.Context, leagueYear, leagueID string, week int) (*api.Response[[]models.RemainingSchedule], error) {
	query := url.Values{"week": []string{strconv.Itoa(week)}}
	return fetch[[]models.RemainingSchedule](ctx, c, withQuery(fmt.Sprintf(remainingSOSEndpointFormat, leagueYear, leagueID), query), nil)
}

func (c *FantasyStatsApiClient) GetSeasonRecords(ctx context.Context, leagueYear, leagueID string) (*api.Response[models.SeasonRecords], error) {
	return fetch[models.SeasonRecords](ctx, c, fmt.Sprintf(seasonRecordsEndpointFormat, leagueYear, leagueID), nil)
}

func (c *FantasyStatsApiClient) GetLeagues(ctx context.Context) (*api.Response[models.LeagueDirectory], error) {
	return fetch[models.LeagueDirectory](ctx, c, LeaguesEndpoint, nil)
}

func (c *FantasyStatsApiClient) GetDistinctLeaguesPrevious(ctx context.Context) (*api.Response[[]models.LeagueSummary], error) {
	return fetch[[]models.LeagueSummary](ctx, c, DistinctLeaguesPreviousEndpoint, nil)
}

// SubmitLeague POSTs a new league with the backend's CSRF token.
func (c *FantasyStatsApiClient) SubmitLeague(ctx context.Context, input models.LeagueInput) (*api.Response[models.LeagueFormResult], error) {
	opts, err := c.postOptions(ctx, input)
	if err != nil {
		return nil, err
	}
	return fetch[models.LeagueFormResult](ctx, c, LeagueInputEndpoint, opts)
}

// CopyOldLeague asks the backend to carry a previous season's league forward.
func (c *FantasyStatsApiClient) CopyOldLeague(ctx context.Context, leagueID string) (*api.Response[models.LeagueFormResult], error) {
	opts, err := c.postOptions(ctx, nil)
	if err != nil {
		return nil, err
	}
	return fetch[models.LeagueFormResult](ctx, c, fmt.Sprintf(copyOldLeagueEndpointFormat, leagueID), opts)
}

func (c *FantasyStatsApiClient) postOptions(ctx context.Context, body interface{}) (*api.RequestOptions, error) {
	token, err := c.csrfToken(ctx)
	if err != nil {
		return nil, err
	}
	return &api.RequestOptions{
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "application/json",
			CSRFHeaderName: token,
		},
		Body: body,
	}, nil
}

// csrfToken returns the backend's CSRF cookie, fetching it first if the
// cookie jar does not hold one yet.
func (c *FantasyStatsApiClient) csrfToken(ctx context.Context) (string, error) {
	if token := c.Cookie(CSRFCookieName); token != "" {
		return token, nil
	}
	if _, err := c.SafeFetch(ctx, CSRFTokenEndpoint, nil, c.verbose, c.retryCount); err != nil {
		return "", fmt.Errorf("failed to obtain CSRF token: %w", err)
	}
	token := c.Cookie(CSRFCookieName)
	if token == "" {
		return "", fmt.Errorf("backend did not set the %s cookie", CSRFCookieName)
	}
	return token, nil
}

func withQuery(endpoint string, query url.Values) string {
	if len(query) == 0 {
		return endpoint
	}
	return endpoint + "?" + query.Encode()
}
