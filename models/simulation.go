package models

// PlayoffOdds is one team's simulated season outlook.
type PlayoffOdds struct {
	Team               string  `json:"team"`
	Owner              string  `json:"owner"`
	ProjectedWins      float64 `json:"projected_wins"`
	ProjectedLosses    float64 `json:"projected_losses"`
	ProjectedTies      float64 `json:"projected_ties"`
	ProjectedPointsFor float64 `json:"projected_points_for"`
	PlayoffOdds        float64 `json:"playoff_odds"`
}

// RankDistribution holds the odds of finishing in each position.
type RankDistribution struct {
	Team         string        `json:"team"`
	Owner        string        `json:"owner"`
	PositionOdds []interface{} `json:"position_odds"`
	PlayoffOdds  interface{}   `json:"playoff_odds"`
}

// SeedingOutcome holds the odds of notable seeding results.
type SeedingOutcome struct {
	Team            string      `json:"team"`
	Owner           string      `json:"owner"`
	FirstInLeague   interface{} `json:"first_in_league"`
	FirstInDivision interface{} `json:"first_in_division"`
	MakePlayoffs    interface{} `json:"make_playoffs"`
	LastInDivision  interface{} `json:"last_in_division"`
	LastInLeague    interface{} `json:"last_in_league"`
}

// SimulationResult is the body of /api/simulate-playoff-odds/.
type SimulationResult struct {
	PlayoffOdds      []PlayoffOdds      `json:"playoff_odds"`
	RankDistribution []RankDistribution `json:"rank_distribution"`
	SeedingOutcomes  []SeedingOutcome   `json:"seeding_outcomes"`
}

// RemainingSchedule is one row of /api/remaining-strength-of-schedule/.
type RemainingSchedule struct {
	Team              string  `json:"team"`
	Owner             string  `json:"owner"`
	OppPointsFor      float64 `json:"opp_points_for"`
	OppWinPct         float64 `json:"opp_win_pct"`
	OppPowerRank      float64 `json:"opp_power_rank"`
	OverallDifficulty float64 `json:"overall_difficulty"`
}
