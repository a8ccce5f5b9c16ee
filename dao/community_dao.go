package dao

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

// CommunityDAO stores communities, buildings and houses.
type CommunityDAO struct {
	DB *gorm.DB
}

func NewCommunityDAO(db *gorm.DB) *CommunityDAO {
	return &CommunityDAO{DB: db}
}

func (dao *CommunityDAO) CreateCommunity(ctx context.Context, community *model.Community) error {
	start := time.Now()
	logger.Info("Creating new community", zap.String("name", community.Name))
	if err := dao.DB.WithContext(ctx).Create(community).Error; err != nil {
		logger.Error("Failed to create community", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return conflictError(err, echo_errors.ErrCommunityConflict)
	}
	logger.Info("Community created successfully", zap.Uint("communityID", community.ID), zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *CommunityDAO) UpdateCommunity(ctx context.Context, community *model.Community) error {
	result := dao.DB.WithContext(ctx).Model(community).
		Select("name", "address", "property_phone", "fee_standard_cents", "updated_at").
		Updates(community)
	if result.Error != nil {
		return conflictError(result.Error, echo_errors.ErrCommunityConflict)
	}
	if result.RowsAffected == 0 {
		return echo_errors.ErrCommunityNotFound
	}
	return nil
}

func (dao *CommunityDAO) DeleteCommunity(ctx context.Context, communityID uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var buildings int64
		if err := tx.Model(&model.Building{}).Where("community_id = ?", communityID).Count(&buildings).Error; err != nil {
			return translateError(err, echo_errors.ErrCommunityNotFound)
		}
		if buildings > 0 {
			return echo_errors.ErrCommunityConflict
		}
		result := tx.Delete(&model.Community{}, communityID)
		if result.Error != nil {
			return translateError(result.Error, echo_errors.ErrCommunityNotFound)
		}
		if result.RowsAffected == 0 {
			return echo_errors.ErrCommunityNotFound
		}
		return nil
	})
}

func (dao *CommunityDAO) GetCommunity(ctx context.Context, communityID uint) (*model.Community, error) {
	var community model.Community
	if err := dao.DB.WithContext(ctx).First(&community, communityID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrCommunityNotFound)
	}
	return &community, nil
}

func (dao *CommunityDAO) ListCommunities(ctx context.Context, limit, offset int) ([]model.Community, error) {
	var communities []model.Community
	if err := applyPage(dao.DB.WithContext(ctx).Order("id"), limit, offset).Find(&communities).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrCommunityNotFound)
	}
	return communities, nil
}

func (dao *CommunityDAO) CountBuildings(ctx context.Context, communityID uint) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&model.Building{}).Where("community_id = ?", communityID).Count(&n).Error
	return n, translateError(err, echo_errors.ErrCommunityNotFound)
}

func (dao *CommunityDAO) CountCommunityHouses(ctx context.Context, communityID uint) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&model.House{}).
		Joins("JOIN buildings ON buildings.id = houses.building_id").
		Where("buildings.community_id = ?", communityID).
		Count(&n).Error
	return n, translateError(err, echo_errors.ErrCommunityNotFound)
}

func (dao *CommunityDAO) CreateBuilding(ctx context.Context, building *model.Building) error {
	logger.Info("Creating new building", zap.String("name", building.Name), zap.Uint("communityID", building.CommunityID))
	if err := dao.DB.WithContext(ctx).Create(building).Error; err != nil {
		return conflictError(err, echo_errors.ErrBuildingConflict)
	}
	return nil
}

func (dao *CommunityDAO) UpdateBuilding(ctx context.Context, building *model.Building) error {
	result := dao.DB.WithContext(ctx).Model(building).
		Select("community_id", "name", "unit_count", "updated_at").
		Updates(building)
	if result.Error != nil {
		return conflictError(result.Error, echo_errors.ErrBuildingConflict)
	}
	if result.RowsAffected == 0 {
		return echo_errors.ErrBuildingNotFound
	}
	return nil
}

func (dao *CommunityDAO) DeleteBuilding(ctx context.Context, buildingID uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var houses int64
		if err := tx.Model(&model.House{}).Where("building_id = ?", buildingID).Count(&houses).Error; err != nil {
			return translateError(err, echo_errors.ErrBuildingNotFound)
		}
		if houses > 0 {
			return echo_errors.ErrBuildingConflict
		}
		result := tx.Delete(&model.Building{}, buildingID)
		if result.Error != nil {
			return translateError(result.Error, echo_errors.ErrBuildingNotFound)
		}
		if result.RowsAffected == 0 {
			return echo_errors.ErrBuildingNotFound
		}
		return nil
	})
}

func (dao *CommunityDAO) GetBuilding(ctx context.Context, buildingID uint) (*model.Building, error) {
	var building model.Building
	if err := dao.DB.WithContext(ctx).First(&building, buildingID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBuildingNotFound)
	}
	return &building, nil
}

func (dao *CommunityDAO) ListBuildings(ctx context.Context, communityID uint, limit, offset int) ([]model.Building, error) {
	q := dao.DB.WithContext(ctx).Order("id")
	if communityID != 0 {
		q = q.Where("community_id = ?", communityID)
	}
	var buildings []model.Building
	if err := applyPage(q, limit, offset).Find(&buildings).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBuildingNotFound)
	}
	return buildings, nil
}

func (dao *CommunityDAO) BuildingHouseStats(ctx context.Context, buildingID uint) (int64, float64, error) {
	var row struct {
		Count int64
		Area  float64
	}
	err := dao.DB.WithContext(ctx).Model(&model.House{}).
		Select("COUNT(*) AS count, COALESCE(SUM(area), 0) AS area").
		Where("building_id = ?", buildingID).
		Scan(&row).Error
	return row.Count, row.Area, translateError(err, echo_errors.ErrBuildingNotFound)
}

func (dao *CommunityDAO) CreateHouse(ctx context.Context, house *model.House) error {
	logger.Info("Creating new house", zap.Uint("buildingID", house.BuildingID), zap.String("number", house.Number))
	if err := dao.DB.WithContext(ctx).Create(house).Error; err != nil {
		return conflictError(err, echo_errors.ErrHouseConflict)
	}
	return nil
}

func (dao *CommunityDAO) UpdateHouse(ctx context.Context, house *model.House) error {
	result := dao.DB.WithContext(ctx).Model(house).
		Select("building_id", "unit", "number", "area", "owner_name", "updated_at").
		Updates(house)
	if result.Error != nil {
		return conflictError(result.Error, echo_errors.ErrHouseConflict)
	}
	if result.RowsAffected == 0 {
		return echo_errors.ErrHouseNotFound
	}
	return nil
}

func (dao *CommunityDAO) DeleteHouse(ctx context.Context, houseID uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bindings int64
		if err := tx.Model(&model.UserHouse{}).Where("house_id = ?", houseID).Count(&bindings).Error; err != nil {
			return translateError(err, echo_errors.ErrHouseNotFound)
		}
		if bindings > 0 {
			return echo_errors.ErrHouseConflict
		}
		result := tx.Delete(&model.House{}, houseID)
		if result.Error != nil {
			return translateError(result.Error, echo_errors.ErrHouseNotFound)
		}
		if result.RowsAffected == 0 {
			return echo_errors.ErrHouseNotFound
		}
		return nil
	})
}

func (dao *CommunityDAO) GetHouse(ctx context.Context, houseID uint) (*model.House, error) {
	var house model.House
	if err := dao.DB.WithContext(ctx).First(&house, houseID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrHouseNotFound)
	}
	return &house, nil
}

func (dao *CommunityDAO) ListHouses(ctx context.Context, buildingID uint, limit, offset int) ([]model.House, error) {
	q := dao.DB.WithContext(ctx).Order("id")
	if buildingID != 0 {
		q = q.Where("building_id = ?", buildingID)
	}
	var houses []model.House
	if err := applyPage(q, limit, offset).Find(&houses).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrHouseNotFound)
	}
	return houses, nil
}

// ListHousesByIDs keeps the order of the stored rows.
func (dao *CommunityDAO) ListHousesByIDs(ctx context.Context, houseIDs []uint) ([]model.House, error) {
	if len(houseIDs) == 0 {
		return []model.House{}, nil
	}
	var houses []model.House
	if err := dao.DB.WithContext(ctx).Where("id IN ?", houseIDs).Order("id").Find(&houses).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrHouseNotFound)
	}
	return houses, nil
}

// HouseIDsInBuildings lists the ids of every house in the buildings.
func (dao *CommunityDAO) HouseIDsInBuildings(ctx context.Context, buildingIDs []uint) ([]uint, error) {
	if len(buildingIDs) == 0 {
		return []uint{}, nil
	}
	var ids []uint
	err := dao.DB.WithContext(ctx).Model(&model.House{}).
		Where("building_id IN ?", buildingIDs).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err, echo_errors.ErrHouseNotFound)
	}
	return ids, nil
}
