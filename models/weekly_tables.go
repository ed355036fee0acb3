package models

// BoxScore is one matchup of /api/box-scores/{year}/{id}/{week}/.
type BoxScore struct {
	HomeTeam  string  `json:"home_team"`
	HomeScore float64 `json:"home_score"`
	AwayTeam  string  `json:"away_team"`
	AwayScore float64 `json:"away_score"`
}

// WeeklyAwards pairs best and worst awards. Each award is a
// [title, description] tuple.
type WeeklyAwards struct {
	BestAwards  [][]string `json:"bestAwards"`
	WorstAwards [][]string `json:"worstAwards"`
}

// AwardRow joins the i-th best and worst award for display.
type AwardRow struct {
	BestTitle, BestText   string
	WorstTitle, WorstText string
}

// Rows zips best and worst awards, padding the shorter side.
func (a WeeklyAwards) Rows() []AwardRow {
	n := len(a.BestAwards)
	if len(a.WorstAwards) > n {
		n = len(a.WorstAwards)
	}
	rows := make([]AwardRow, 0, n)
	for i := 0; i < n; i++ {
		var row AwardRow
		if i < len(a.BestAwards) {
			row.BestTitle, row.BestText = pair(a.BestAwards[i])
		}
		if i < len(a.WorstAwards) {
			row.WorstTitle, row.WorstText = pair(a.WorstAwards[i])
		}
		rows = append(rows, row)
	}
	return rows
}

func pair(award []string) (string, string) {
	switch len(award) {
	case 0:
		return "", ""
	case 1:
		return award[0], ""
	default:
		return award[0], award[1]
	}
}

// PowerRanking is one row of /api/power-rankings/.
type PowerRanking struct {
	Team  string  `json:"team"`
	Owner string  `json:"owner"`
	Value float64 `json:"value"`
}

// LuckIndexEntry is one row of /api/luck-index/.
type LuckIndexEntry struct {
	Team  string `json:"team"`
	Text  string `json:"text"`
	Owner string `json:"owner"`
}

// NaughtyListEntry is a started player that was inactive or on bye.
type NaughtyListEntry struct {
	Team         string `json:"team"`
	Player       string `json:"player"`
	ActiveStatus string `json:"active_status"`
}

// Standing is one row of /api/standings/.
type Standing struct {
	Team      string  `json:"team"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Ties      int     `json:"ties"`
	PointsFor float64 `json:"pointsFor"`
	Owner     string  `json:"owner"`
}
