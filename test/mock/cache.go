// test/mock/cache.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/community/api/model"
)

// MockStatsCache is a mock implementation of the statistics cache
type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) GetCommunityStatistics(ctx context.Context, communityID uint) (*model.CommunityStatistics, bool, error) {
	args := m.Called(ctx, communityID)
	stats, _ := args.Get(0).(*model.CommunityStatistics)
	return stats, args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) SetCommunityStatistics(ctx context.Context, stats model.CommunityStatistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatsCache) GetBuildingStatistics(ctx context.Context, buildingID uint) (*model.BuildingStatistics, bool, error) {
	args := m.Called(ctx, buildingID)
	stats, _ := args.Get(0).(*model.BuildingStatistics)
	return stats, args.Bool(1), args.Error(2)
}

func (m *MockStatsCache) SetBuildingStatistics(ctx context.Context, stats model.BuildingStatistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatsCache) InvalidateStatistics(ctx context.Context, communityID, buildingID uint) error {
	args := m.Called(ctx, communityID, buildingID)
	return args.Error(0)
}
