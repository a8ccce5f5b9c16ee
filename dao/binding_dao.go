package dao

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type BindingDAO struct {
	DB *gorm.DB
}

func NewBindingDAO(db *gorm.DB) *BindingDAO {
	return &BindingDAO{DB: db}
}

// CreateBinding inserts a binding unless the (user, house) pair already has
// one in any status. The unique index covers the race between the check and
// the insert.
func (dao *BindingDAO) CreateBinding(ctx context.Context, binding *model.UserHouse) error {
	logger.Info("Creating house binding",
		zap.Uint("userID", binding.UserID),
		zap.Uint("houseID", binding.HouseID))

	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.UserHouse{}).
			Where("user_id = ? AND house_id = ?", binding.UserID, binding.HouseID).
			Count(&existing).Error; err != nil {
			return translateError(err, echo_errors.ErrBindingNotFound)
		}
		if existing > 0 {
			return echo_errors.ErrDuplicateBinding
		}
		if err := tx.Create(binding).Error; err != nil {
			return conflictError(err, echo_errors.ErrDuplicateBinding)
		}
		return nil
	})
	if err != nil && !errors.Is(err, echo_errors.ErrDuplicateBinding) {
		logger.Error("Failed to create house binding", zap.Error(err))
	}
	return err
}

func (dao *BindingDAO) GetBinding(ctx context.Context, bindingID uint) (*model.UserHouse, error) {
	var binding model.UserHouse
	if err := dao.DB.WithContext(ctx).First(&binding, bindingID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBindingNotFound)
	}
	return &binding, nil
}

func (dao *BindingDAO) ListBindings(ctx context.Context, filter model.BindingFilter, limit, offset int) ([]model.UserHouse, error) {
	q := dao.DB.WithContext(ctx).Order("id DESC")
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.HouseID != nil {
		q = q.Where("house_id = ?", *filter.HouseID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var bindings []model.UserHouse
	if err := applyPage(q, limit, offset).Find(&bindings).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBindingNotFound)
	}
	return bindings, nil
}

// ApprovedHouseIDs lists the houses the user is approved for.
func (dao *BindingDAO) ApprovedHouseIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := dao.DB.WithContext(ctx).Model(&model.UserHouse{}).
		Where("user_id = ? AND status = ?", userID, model.BindingApproved).
		Order("house_id").
		Pluck("house_id", &ids).Error
	if err != nil {
		return nil, translateError(err, echo_errors.ErrBindingNotFound)
	}
	return ids, nil
}

func (dao *BindingDAO) HasApprovedBinding(ctx context.Context, userID, houseID uint) (bool, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&model.UserHouse{}).
		Where("user_id = ? AND house_id = ? AND status = ?", userID, houseID, model.BindingApproved).
		Count(&n).Error
	if err != nil {
		return false, translateError(err, echo_errors.ErrBindingNotFound)
	}
	return n > 0, nil
}

// ApprovedUserIDs lists residents approved for any of the houses.
func (dao *BindingDAO) ApprovedUserIDs(ctx context.Context, houseIDs []uint) ([]uint, error) {
	q := dao.DB.WithContext(ctx).Model(&model.UserHouse{}).Distinct("user_id").
		Where("status = ?", model.BindingApproved)
	if houseIDs != nil {
		if len(houseIDs) == 0 {
			return []uint{}, nil
		}
		q = q.Where("house_id IN ?", houseIDs)
	}
	var ids []uint
	if err := q.Pluck("user_id", &ids).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrBindingNotFound)
	}
	return ids, nil
}

func (dao *BindingDAO) TransitionBinding(ctx context.Context, bindingID uint, mutate Mutation[model.UserHouse]) (*model.UserHouse, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrBindingNotFound,
		func(b *model.UserHouse) string { return string(b.Status) },
		lift(mutate), bindingID)
}
