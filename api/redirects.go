package api

import (
	"fmt"
	"net/http"
	"strings"
)

// Backend error codes that map to client-side navigation.
const (
	CodeTooSoonLeague      = "too_soon_league"
	CodeTooSoonSimulations = "too_soon_simulations"
	CodeInvalidLeague      = "invalid_league"
)

// Paths the client navigates to for recognized conditions.
const (
	PathPrefix               = "/fantasy_stats"
	TooEarlyLeaguePage       = "league-homepage"
	TooEarlySimulationsPage  = "playoff-simulations"
	InvalidLeaguePath        = PathPrefix + "/invalid-league"
	tooEarlyPathFormat       = PathPrefix + "/uh-oh-too-early/%s/%s/%s"
	leaguePagePathFormat     = PathPrefix + "/league/%s/%s"
	simulationPagePathFormat = PathPrefix + "/simulation/%s/%s"
	recordsPagePathFormat    = PathPrefix + "/league-records/%s/%s"
)

// RedirectRule maps one (status, code) pair to a navigation path built from
// the response body.
type RedirectRule struct {
	StatusCode int
	Code       string
	Path       func(body map[string]interface{}) string
}

// RedirectRules is the fixed lookup table. Any non-2xx response not matched
// here is a failure.
var RedirectRules = []RedirectRule{
	{
		StatusCode: http.StatusConflict,
		Code:       CodeTooSoonLeague,
		Path: func(body map[string]interface{}) string {
			return TooEarlyPath(TooEarlyLeaguePage, bodyField(body, "leagueYear"), bodyField(body, "leagueId"))
		},
	},
	{
		StatusCode: http.StatusConflict,
		Code:       CodeTooSoonSimulations,
		Path: func(body map[string]interface{}) string {
			return TooEarlyPath(TooEarlySimulationsPage, bodyField(body, "leagueYear"), bodyField(body, "leagueId"))
		},
	},
	{
		StatusCode: http.StatusBadRequest,
		Code:       CodeInvalidLeague,
		Path: func(map[string]interface{}) string {
			return InvalidLeaguePath
		},
	},
}

// MatchRedirect returns the redirect path for (status, body) or "" when the
// pair is not recognized.
func MatchRedirect(status int, body map[string]interface{}) string {
	if body == nil {
		return ""
	}
	code, _ := body["code"].(string)
	for _, rule := range RedirectRules {
		if rule.StatusCode == status && rule.Code == code {
			return rule.Path(body)
		}
	}
	return ""
}

// TooEarlyPath builds /fantasy_stats/uh-oh-too-early/{page}/{year}/{id}.
func TooEarlyPath(page, leagueYear, leagueID string) string {
	return fmt.Sprintf(tooEarlyPathFormat, page, leagueYear, leagueID)
}

// LeaguePagePath builds /fantasy_stats/league/{year}/{id}.
func LeaguePagePath(leagueYear, leagueID string) string {
	return fmt.Sprintf(leaguePagePathFormat, leagueYear, leagueID)
}

// SimulationPagePath builds /fantasy_stats/simulation/{year}/{id}.
func SimulationPagePath(leagueYear, leagueID string) string {
	return fmt.Sprintf(simulationPagePathFormat, leagueYear, leagueID)
}

// RecordsPagePath builds /fantasy_stats/league-records/{year}/{id}.
func RecordsPagePath(leagueYear, leagueID string) string {
	return fmt.Sprintf(recordsPagePathFormat, leagueYear, leagueID)
}

// bodyField renders a JSON scalar the way it would appear in a URL. JSON
// numbers decode to float64, so 2024 must not become "2024.000000".
func bodyField(body map[string]interface{}, key string) string {
	switch v := body[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return strings.TrimRight(fmt.Sprintf("%f", v), "0")
	default:
		return fmt.Sprint(v)
	}
}
