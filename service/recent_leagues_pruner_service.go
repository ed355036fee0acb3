package services

import (
	"context"
	"time"

	"fantasy-stats-web/logging"
)

// RecentLeaguePruner trims the recently viewed leagues.
type RecentLeaguePruner interface {
	Prune(limit int) (int, error)
}

// RecentLeaguesPrunerService periodically trims the recently viewed leagues
// to a fixed size.
type RecentLeaguesPrunerService struct {
	dao    RecentLeaguePruner
	limit  int
	logger *logging.Logger
}

// NewRecentLeaguesPrunerService constructs a new pruner keeping limit leagues.
func NewRecentLeaguesPrunerService(dao RecentLeaguePruner, limit int) *RecentLeaguesPrunerService {
	return &RecentLeaguesPrunerService{
		dao:    dao,
		limit:  limit,
		logger: logging.For("RecentLeaguesPrunerService"),
	}
}

// StartPeriodicJob launches the background loop at the given interval. It
// stops when ctx is done.
func (p *RecentLeaguesPrunerService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go p.startPeriodicJob(ctx, interval)
}

func (p *RecentLeaguesPrunerService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Stopping periodic recent leagues pruner job.")
			return
		case <-ticker.C:
			p.logger.Debug("Running periodic recent leagues pruner job.")
			if _, err := p.PruneRecentLeagues(); err != nil {
				p.logger.Error("PruneRecentLeagues returned error: %v", err)
			}
		}
	}
}

// PruneRecentLeagues deletes the oldest leagues beyond the limit.
func (p *RecentLeaguesPrunerService) PruneRecentLeagues() (int, error) {
	deleted, err := p.dao.Prune(p.limit)
	if err != nil {
		return deleted, err
	}
	if deleted > 0 {
		p.logger.Info("Pruned %d recent leagues, keeping %d", deleted, p.limit)
	}
	return deleted, nil
}
