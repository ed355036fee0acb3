package models

// League is the metadata returned by /api/league/{year}/{id}/.
type League struct {
	LeagueName string `json:"league_name"`
	LeagueYear int    `json:"league_year"`
	LeagueID   int64  `json:"league_id"`
}

// LeagueStatus is the body of /api/check-league-status/{year}/{id}/.
type LeagueStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CurrentWeek is the body of /api/league/{year}/{id}/current-week/.
type CurrentWeek struct {
	CurrentWeek     *int `json:"current_week"`
	NCompletedWeeks *int `json:"n_completed_weeks,omitempty"`
}

// LeagueSettings is the body of /api/league-settings/{year}/{id}/.
type LeagueSettings struct {
	RegularSeasonComplete bool `json:"regular_season_complete"`
	NRegularSeasonWeeks   *int `json:"n_regular_season_weeks"`
	NPlayoffSpots         int  `json:"n_playoff_spots"`
	NTeams                int  `json:"n_teams"`
	PlayoffTeams          int  `json:"playoff_teams,omitempty"`
}

// LeagueSummary is one row of the league directory listings.
type LeagueSummary struct {
	LeagueID   int64  `json:"league_id"`
	LeagueYear int    `json:"league_year"`
	LeagueName string `json:"league_name"`
}

// LeagueDirectory is the body of /api/leagues/.
type LeagueDirectory struct {
	LeaguesCurrentYear  []LeagueSummary `json:"leagues_current_year"`
	LeaguesPreviousYear []LeagueSummary `json:"leagues_previous_year"`
}

// LeagueInput is the body POSTed to /api/league-input/.
type LeagueInput struct {
	LeagueID   string `json:"league_id"`
	LeagueYear int    `json:"league_year"`
	SWID       string `json:"swid"`
	EspnS2     string `json:"espn_s2"`
}

// LeagueFormResult is the body returned by league-input and copy-old-league.
type LeagueFormResult struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirect_url"`
	Error       string `json:"error"`
}

// RecentLeague is a league a visitor opened recently.
type RecentLeague struct {
	LeagueYear string `json:"league_year"`
	LeagueID   string `json:"league_id"`
	LeagueName string `json:"league_name"`
	ViewedAt   int64  `json:"viewed_at"`
}
