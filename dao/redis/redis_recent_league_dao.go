package redis

import (
	"encoding/json"
	"fmt"
	"sort"

	"fantasy-stats-web/db"
	"fantasy-stats-web/logging"
	"fantasy-stats-web/models"
)

const RECENT_LEAGUE_KEY_FORMAT_V1 = "recent_league_v1:%s_%s"
const RECENT_LEAGUE_KEY_PREFIX_V1 = "recent_league_v1:"

// RedisRecentLeagueDAO keeps the leagues visitors opened recently.
type RedisRecentLeagueDAO struct {
	client db.RedisClient
	logger *logging.Logger
}

// NewRedisRecentLeagueDAO initializes a RedisRecentLeagueDAO with the Redis client.
func NewRedisRecentLeagueDAO(client db.RedisClient) *RedisRecentLeagueDAO {
	return &RedisRecentLeagueDAO{client: client, logger: logging.For("RedisRecentLeagueDAO")}
}

// RecentLeagueKey returns the Redis key of a league entry.
func RecentLeagueKey(leagueYear, leagueID string) string {
	return fmt.Sprintf(RECENT_LEAGUE_KEY_FORMAT_V1, leagueYear, leagueID)
}

// Record upserts league, replacing any earlier visit of the same league.
func (dao *RedisRecentLeagueDAO) Record(league models.RecentLeague) error {
	data, err := json.Marshal(league)
	if err != nil {
		return fmt.Errorf("failed to marshal recent league %s/%s: %w", league.LeagueYear, league.LeagueID, err)
	}
	if err := dao.client.Set(RecentLeagueKey(league.LeagueYear, league.LeagueID), string(data)); err != nil {
		return fmt.Errorf("failed to set recent league in redis: %w", err)
	}
	return nil
}

// List returns every recorded league, most recently viewed first. Entries
// that cannot be read are skipped.
func (dao *RedisRecentLeagueDAO) List() ([]models.RecentLeague, error) {
	keys, err := dao.client.Keys(RECENT_LEAGUE_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list recent league keys: %w", err)
	}

	leagues := make([]models.RecentLeague, 0, len(keys))
	for _, key := range keys {
		str, err := dao.client.Get(key)
		if err != nil {
			dao.logger.Warn("Skipping %s: %v", key, err)
			continue
		}
		var league models.RecentLeague
		if err := json.Unmarshal([]byte(str), &league); err != nil {
			dao.logger.Warn("Skipping %s: failed to unmarshal: %v", key, err)
			continue
		}
		leagues = append(leagues, league)
	}

	sort.SliceStable(leagues, func(i, j int) bool {
		if leagues[i].ViewedAt != leagues[j].ViewedAt {
			return leagues[i].ViewedAt > leagues[j].ViewedAt
		}
		return RecentLeagueKey(leagues[i].LeagueYear, leagues[i].LeagueID) < RecentLeagueKey(leagues[j].LeagueYear, leagues[j].LeagueID)
	})
	return leagues, nil
}

// Prune deletes the oldest entries so at most limit remain, and returns how
// many were deleted.
func (dao *RedisRecentLeagueDAO) Prune(limit int) (int, error) {
	if limit < 0 {
		limit = 0
	}
	leagues, err := dao.List()
	if err != nil {
		return 0, err
	}
	if len(leagues) <= limit {
		return 0, nil
	}

	deleted := 0
	for _, league := range leagues[limit:] {
		key := RecentLeagueKey(league.LeagueYear, league.LeagueID)
		if err := dao.client.Del(key); err != nil {
			return deleted, fmt.Errorf("failed to delete recent league key %s: %w", key, err)
		}
		deleted++
	}
	dao.logger.Info("Pruned %d recent leagues", deleted)
	return deleted, nil
}

// Forget removes one league from the history.
func (dao *RedisRecentLeagueDAO) Forget(leagueYear, leagueID string) error {
	key := RecentLeagueKey(leagueYear, leagueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete recent league key %s: %w", key, err)
	}
	return nil
}
