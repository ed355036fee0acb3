package services

import (
	"context"

	"fantasy-stats-web/api/fantasystats"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"
)

// RecordsPage holds a league's season records.
type RecordsPage struct {
	PageOutcome

	LeagueYear string
	LeagueID   string
	Records    models.SeasonRecords
}

type RecordsPageService struct {
	api    fantasystats.FantasyStatsAPI
	logger *logging.Logger
}

func NewRecordsPageService(fantasyStatsApi fantasystats.FantasyStatsAPI) *RecordsPageService {
	return &RecordsPageService{api: fantasyStatsApi, logger: logging.For("RecordsPageService")}
}

func (s *RecordsPageService) BuildRecordsPage(ctx context.Context, leagueYear, leagueID string) (*RecordsPage, error) {
	page := &RecordsPage{LeagueYear: leagueYear, LeagueID: leagueID}
	resp, err := s.api.GetSeasonRecords(ctx, leagueYear, leagueID)
	if err := page.settle(fetchInto(&page.Records, resp, err)); err != nil {
		s.logger.Error("Records page %s/%s failed: %v", leagueYear, leagueID, err)
		return page, err
	}
	return page, nil
}
