// api/service/community_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/util"
)

// ICommunityService manages communities, buildings and houses.
type ICommunityService interface {
	CreateCommunity(ctx context.Context, actor *model.Actor, community model.Community) (*model.Community, error)
	UpdateCommunity(ctx context.Context, actor *model.Actor, community model.Community) (*model.Community, error)
	DeleteCommunity(ctx context.Context, actor *model.Actor, communityID uint) error
	GetCommunity(ctx context.Context, communityID uint) (*model.Community, error)
	ListCommunities(ctx context.Context, limit, offset int) ([]model.Community, error)
	CommunityStatistics(ctx context.Context, communityID uint) (*model.CommunityStatistics, error)

	CreateBuilding(ctx context.Context, actor *model.Actor, building model.Building) (*model.Building, error)
	UpdateBuilding(ctx context.Context, actor *model.Actor, building model.Building) (*model.Building, error)
	DeleteBuilding(ctx context.Context, actor *model.Actor, buildingID uint) error
	GetBuilding(ctx context.Context, buildingID uint) (*model.Building, error)
	ListBuildings(ctx context.Context, communityID uint, limit, offset int) ([]model.Building, error)
	BuildingStatistics(ctx context.Context, buildingID uint) (*model.BuildingStatistics, error)

	CreateHouse(ctx context.Context, actor *model.Actor, house model.House) (*model.House, error)
	UpdateHouse(ctx context.Context, actor *model.Actor, house model.House) (*model.House, error)
	DeleteHouse(ctx context.Context, actor *model.Actor, houseID uint) error
	GetHouse(ctx context.Context, houseID uint) (*model.House, error)
	ListHouses(ctx context.Context, buildingID uint, limit, offset int) ([]model.House, error)
	ListMyHouses(ctx context.Context, actor *model.Actor) ([]model.House, error)
}

type PropertyStore interface {
	CreateCommunity(ctx context.Context, community *model.Community) error
	UpdateCommunity(ctx context.Context, community *model.Community) error
	DeleteCommunity(ctx context.Context, communityID uint) error
	GetCommunity(ctx context.Context, communityID uint) (*model.Community, error)
	ListCommunities(ctx context.Context, limit, offset int) ([]model.Community, error)
	CountBuildings(ctx context.Context, communityID uint) (int64, error)
	CountCommunityHouses(ctx context.Context, communityID uint) (int64, error)

	CreateBuilding(ctx context.Context, building *model.Building) error
	UpdateBuilding(ctx context.Context, building *model.Building) error
	DeleteBuilding(ctx context.Context, buildingID uint) error
	GetBuilding(ctx context.Context, buildingID uint) (*model.Building, error)
	ListBuildings(ctx context.Context, communityID uint, limit, offset int) ([]model.Building, error)
	BuildingHouseStats(ctx context.Context, buildingID uint) (int64, float64, error)

	CreateHouse(ctx context.Context, house *model.House) error
	UpdateHouse(ctx context.Context, house *model.House) error
	DeleteHouse(ctx context.Context, houseID uint) error
	GetHouse(ctx context.Context, houseID uint) (*model.House, error)
	ListHouses(ctx context.Context, buildingID uint, limit, offset int) ([]model.House, error)
	ListHousesByIDs(ctx context.Context, houseIDs []uint) ([]model.House, error)
}

// StatsCache is implemented by util.CacheService.
type StatsCache interface {
	GetCommunityStatistics(ctx context.Context, communityID uint) (*model.CommunityStatistics, bool, error)
	SetCommunityStatistics(ctx context.Context, stats model.CommunityStatistics) error
	GetBuildingStatistics(ctx context.Context, buildingID uint) (*model.BuildingStatistics, bool, error)
	SetBuildingStatistics(ctx context.Context, stats model.BuildingStatistics) error
	InvalidateStatistics(ctx context.Context, communityID, buildingID uint) error
}

type CommunityService struct {
	store          PropertyStore
	houses         HouseAccess
	cache          StatsCache
	validationUtil *util.ValidationUtil
	Common
}

var _ ICommunityService = &CommunityService{}

func NewCommunityService(store PropertyStore, houses HouseAccess, cache StatsCache, validationUtil *util.ValidationUtil, common Common) *CommunityService {
	return &CommunityService{
		store:          store,
		houses:         houses,
		cache:          cache,
		validationUtil: validationUtil,
		Common:         common,
	}
}

func (s *CommunityService) requireStaff(ctx context.Context, actor *model.Actor, resourceType string, id uint, action string) error {
	return s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: resourceType, ID: id}, action)
}

func (s *CommunityService) invalidate(ctx context.Context, communityID, buildingID uint) {
	if err := s.cache.InvalidateStatistics(ctx, communityID, buildingID); err != nil {
		logger.Warn("Failed to invalidate cached statistics",
			zap.Error(err),
			zap.Uint("communityID", communityID),
			zap.Uint("buildingID", buildingID))
	}
}

func (s *CommunityService) CreateCommunity(ctx context.Context, actor *model.Actor, community model.Community) (*model.Community, error) {
	if err := s.requireStaff(ctx, actor, "community", 0, "create"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateCommunity(community); err != nil {
		return nil, err
	}
	community.ID = 0
	if err := s.store.CreateCommunity(ctx, &community); err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}
	return &community, nil
}

func (s *CommunityService) UpdateCommunity(ctx context.Context, actor *model.Actor, community model.Community) (*model.Community, error) {
	if err := s.requireStaff(ctx, actor, "community", community.ID, "update"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateCommunity(community); err != nil {
		return nil, err
	}
	if err := s.store.UpdateCommunity(ctx, &community); err != nil {
		return nil, fmt.Errorf("failed to update community %d: %w", community.ID, err)
	}
	return s.store.GetCommunity(ctx, community.ID)
}

func (s *CommunityService) DeleteCommunity(ctx context.Context, actor *model.Actor, communityID uint) error {
	if err := s.requireStaff(ctx, actor, "community", communityID, "delete"); err != nil {
		return err
	}
	if err := s.store.DeleteCommunity(ctx, communityID); err != nil {
		return fmt.Errorf("failed to delete community %d: %w", communityID, err)
	}
	s.invalidate(ctx, communityID, 0)
	return nil
}

func (s *CommunityService) GetCommunity(ctx context.Context, communityID uint) (*model.Community, error) {
	return s.store.GetCommunity(ctx, communityID)
}

func (s *CommunityService) ListCommunities(ctx context.Context, limit, offset int) ([]model.Community, error) {
	return s.store.ListCommunities(ctx, limit, offset)
}

// CommunityStatistics serves from the cache and falls back to counting
// buildings and houses concurrently.
func (s *CommunityService) CommunityStatistics(ctx context.Context, communityID uint) (*model.CommunityStatistics, error) {
	if cached, found, err := s.cache.GetCommunityStatistics(ctx, communityID); err != nil {
		logger.Warn("Statistics cache read failed", zap.Error(err), zap.Uint("communityID", communityID))
	} else if found {
		return cached, nil
	}

	if _, err := s.store.GetCommunity(ctx, communityID); err != nil {
		return nil, err
	}

	stats := model.CommunityStatistics{CommunityID: communityID}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.store.CountBuildings(gctx, communityID)
		stats.BuildingsCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountCommunityHouses(gctx, communityID)
		stats.HousesCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute community statistics: %w", err)
	}

	if err := s.cache.SetCommunityStatistics(ctx, stats); err != nil {
		logger.Warn("Failed to cache community statistics", zap.Error(err), zap.Uint("communityID", communityID))
	}
	return &stats, nil
}

func (s *CommunityService) CreateBuilding(ctx context.Context, actor *model.Actor, building model.Building) (*model.Building, error) {
	if err := s.requireStaff(ctx, actor, "building", 0, "create"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateBuilding(building); err != nil {
		return nil, err
	}
	if _, err := s.store.GetCommunity(ctx, building.CommunityID); err != nil {
		return nil, err
	}
	building.ID = 0
	if err := s.store.CreateBuilding(ctx, &building); err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}
	s.invalidate(ctx, building.CommunityID, 0)
	return &building, nil
}

func (s *CommunityService) UpdateBuilding(ctx context.Context, actor *model.Actor, building model.Building) (*model.Building, error) {
	if err := s.requireStaff(ctx, actor, "building", building.ID, "update"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateBuilding(building); err != nil {
		return nil, err
	}
	existing, err := s.store.GetBuilding(ctx, building.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetCommunity(ctx, building.CommunityID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateBuilding(ctx, &building); err != nil {
		return nil, fmt.Errorf("failed to update building %d: %w", building.ID, err)
	}
	s.invalidate(ctx, existing.CommunityID, building.ID)
	if existing.CommunityID != building.CommunityID {
		s.invalidate(ctx, building.CommunityID, 0)
	}
	return s.store.GetBuilding(ctx, building.ID)
}

func (s *CommunityService) DeleteBuilding(ctx context.Context, actor *model.Actor, buildingID uint) error {
	if err := s.requireStaff(ctx, actor, "building", buildingID, "delete"); err != nil {
		return err
	}
	existing, err := s.store.GetBuilding(ctx, buildingID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBuilding(ctx, buildingID); err != nil {
		return fmt.Errorf("failed to delete building %d: %w", buildingID, err)
	}
	s.invalidate(ctx, existing.CommunityID, buildingID)
	return nil
}

func (s *CommunityService) GetBuilding(ctx context.Context, buildingID uint) (*model.Building, error) {
	return s.store.GetBuilding(ctx, buildingID)
}

func (s *CommunityService) ListBuildings(ctx context.Context, communityID uint, limit, offset int) ([]model.Building, error) {
	return s.store.ListBuildings(ctx, communityID, limit, offset)
}

func (s *CommunityService) BuildingStatistics(ctx context.Context, buildingID uint) (*model.BuildingStatistics, error) {
	if cached, found, err := s.cache.GetBuildingStatistics(ctx, buildingID); err != nil {
		logger.Warn("Statistics cache read failed", zap.Error(err), zap.Uint("buildingID", buildingID))
	} else if found {
		return cached, nil
	}

	if _, err := s.store.GetBuilding(ctx, buildingID); err != nil {
		return nil, err
	}
	count, area, err := s.store.BuildingHouseStats(ctx, buildingID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute building statistics: %w", err)
	}

	stats := model.BuildingStatistics{BuildingID: buildingID, HousesCount: count, TotalArea: area}
	if err := s.cache.SetBuildingStatistics(ctx, stats); err != nil {
		logger.Warn("Failed to cache building statistics", zap.Error(err), zap.Uint("buildingID", buildingID))
	}
	return &stats, nil
}

func (s *CommunityService) CreateHouse(ctx context.Context, actor *model.Actor, house model.House) (*model.House, error) {
	if err := s.requireStaff(ctx, actor, "house", 0, "create"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateHouse(house); err != nil {
		return nil, err
	}
	building, err := s.store.GetBuilding(ctx, house.BuildingID)
	if err != nil {
		return nil, err
	}
	house.ID = 0
	if err := s.store.CreateHouse(ctx, &house); err != nil {
		return nil, fmt.Errorf("failed to create house: %w", err)
	}
	s.invalidate(ctx, building.CommunityID, building.ID)
	return &house, nil
}

func (s *CommunityService) UpdateHouse(ctx context.Context, actor *model.Actor, house model.House) (*model.House, error) {
	if err := s.requireStaff(ctx, actor, "house", house.ID, "update"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateHouse(house); err != nil {
		return nil, err
	}
	existing, err := s.store.GetHouse(ctx, house.ID)
	if err != nil {
		return nil, err
	}
	building, err := s.store.GetBuilding(ctx, house.BuildingID)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateHouse(ctx, &house); err != nil {
		return nil, fmt.Errorf("failed to update house %d: %w", house.ID, err)
	}
	s.invalidate(ctx, building.CommunityID, building.ID)
	if existing.BuildingID != house.BuildingID {
		if previous, err := s.store.GetBuilding(ctx, existing.BuildingID); err == nil {
			s.invalidate(ctx, previous.CommunityID, previous.ID)
		}
	}
	return s.store.GetHouse(ctx, house.ID)
}

func (s *CommunityService) DeleteHouse(ctx context.Context, actor *model.Actor, houseID uint) error {
	if err := s.requireStaff(ctx, actor, "house", houseID, "delete"); err != nil {
		return err
	}
	existing, err := s.store.GetHouse(ctx, houseID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteHouse(ctx, houseID); err != nil {
		return fmt.Errorf("failed to delete house %d: %w", houseID, err)
	}
	if building, err := s.store.GetBuilding(ctx, existing.BuildingID); err == nil {
		s.invalidate(ctx, building.CommunityID, building.ID)
	}
	return nil
}

func (s *CommunityService) GetHouse(ctx context.Context, houseID uint) (*model.House, error) {
	return s.store.GetHouse(ctx, houseID)
}

func (s *CommunityService) ListHouses(ctx context.Context, buildingID uint, limit, offset int) ([]model.House, error) {
	return s.store.ListHouses(ctx, buildingID, limit, offset)
}

// ListMyHouses lists the houses the actor holds an approved binding for.
func (s *CommunityService) ListMyHouses(ctx context.Context, actor *model.Actor) ([]model.House, error) {
	ids, err := s.houses.ApprovedHouseIDs(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bound houses: %w", err)
	}
	return s.store.ListHousesByIDs(ctx, ids)
}
