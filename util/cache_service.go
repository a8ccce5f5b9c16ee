// api/util/cache_service.go

package util

import (
	"context"
	"fmt"

	"github.com/dev-mohitbeniwal/community/api/db"
	"github.com/dev-mohitbeniwal/community/api/model"
)

// CacheService keeps community and building statistics in Redis. Without a
// Redis client every lookup is a miss and every write is dropped.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func communityStatsKey(id uint) string { return fmt.Sprintf("stats:community:%d", id) }
func buildingStatsKey(id uint) string  { return fmt.Sprintf("stats:building:%d", id) }

func (c *CacheService) GetCommunityStatistics(ctx context.Context, communityID uint) (*model.CommunityStatistics, bool, error) {
	if db.RedisClient == nil {
		return nil, false, nil
	}
	var stats model.CommunityStatistics
	found, err := db.GetCachedJSON(ctx, communityStatsKey(communityID), &stats)
	if err != nil || !found {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *CacheService) SetCommunityStatistics(ctx context.Context, stats model.CommunityStatistics) error {
	if db.RedisClient == nil {
		return nil
	}
	return db.CacheJSON(ctx, communityStatsKey(stats.CommunityID), stats)
}

func (c *CacheService) GetBuildingStatistics(ctx context.Context, buildingID uint) (*model.BuildingStatistics, bool, error) {
	if db.RedisClient == nil {
		return nil, false, nil
	}
	var stats model.BuildingStatistics
	found, err := db.GetCachedJSON(ctx, buildingStatsKey(buildingID), &stats)
	if err != nil || !found {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *CacheService) SetBuildingStatistics(ctx context.Context, stats model.BuildingStatistics) error {
	if db.RedisClient == nil {
		return nil
	}
	return db.CacheJSON(ctx, buildingStatsKey(stats.BuildingID), stats)
}

// InvalidateStatistics drops the cached statistics of the community and
// building. Zero ids are skipped.
func (c *CacheService) InvalidateStatistics(ctx context.Context, communityID, buildingID uint) error {
	if db.RedisClient == nil {
		return nil
	}
	var keys []string
	if communityID != 0 {
		keys = append(keys, communityStatsKey(communityID))
	}
	if buildingID != 0 {
		keys = append(keys, buildingStatsKey(buildingID))
	}
	return db.DeleteCached(ctx, keys...)
}
