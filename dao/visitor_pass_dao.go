package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type VisitorPassDAO struct {
	DB *gorm.DB
}

func NewVisitorPassDAO(db *gorm.DB) *VisitorPassDAO {
	return &VisitorPassDAO{DB: db}
}

func passStatus(p *model.VisitorPass) string { return string(p.Status) }

func (dao *VisitorPassDAO) CreatePass(ctx context.Context, pass *model.VisitorPass) error {
	logger.Info("Creating visitor pass", zap.Uint("userID", pass.UserID), zap.Uint("houseID", pass.HouseID))
	if err := dao.DB.WithContext(ctx).Create(pass).Error; err != nil {
		return conflictError(err, echo_errors.ErrInvalidVisitorPassData)
	}
	return nil
}

func (dao *VisitorPassDAO) GetPass(ctx context.Context, passID uint) (*model.VisitorPass, error) {
	var pass model.VisitorPass
	if err := dao.DB.WithContext(ctx).First(&pass, passID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrVisitorPassNotFound)
	}
	return &pass, nil
}

func (dao *VisitorPassDAO) ListPasses(ctx context.Context, filter model.VisitorPassFilter, limit, offset int) ([]model.VisitorPass, error) {
	q := dao.DB.WithContext(ctx).Order("id DESC")
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	switch filter.Status {
	case "":
	case model.PassActive:
		q = q.Where("status = ? AND valid_to > ?", model.PassActive, filter.At)
	case model.PassExpired:
		q = q.Where("status = ? AND valid_to <= ?", model.PassActive, filter.At)
	default:
		q = q.Where("status = ?", filter.Status)
	}
	var passes []model.VisitorPass
	if err := applyPage(q, limit, offset).Find(&passes).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrVisitorPassNotFound)
	}
	return passes, nil
}

func (dao *VisitorPassDAO) TransitionPass(ctx context.Context, passID uint, mutate Mutation[model.VisitorPass]) (*model.VisitorPass, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrVisitorPassNotFound, passStatus, lift(mutate), passID)
}

// TransitionPassByCode locks the pass presented at the gate.
func (dao *VisitorPassDAO) TransitionPassByCode(ctx context.Context, passCode string, mutate Mutation[model.VisitorPass]) (*model.VisitorPass, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrVisitorPassNotFound, passStatus, lift(mutate), "pass_code = ?", passCode)
}
