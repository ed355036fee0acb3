package models

// SeasonStat is one best/worst record line.
type SeasonStat struct {
	Label string      `json:"label"`
	Owner string      `json:"owner"`
	Value interface{} `json:"value"`
}

// SeasonRecords is the body of /api/season-records/{year}/{id}/.
type SeasonRecords struct {
	BestTeamStats      []SeasonStat `json:"best_team_stats"`
	WorstTeamStats     []SeasonStat `json:"worst_team_stats"`
	BestPositionStats  []SeasonStat `json:"best_position_stats"`
	WorstPositionStats []SeasonStat `json:"worst_position_stats"`
}
