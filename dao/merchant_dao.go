package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type MerchantDAO struct {
	DB *gorm.DB
}

func NewMerchantDAO(db *gorm.DB) *MerchantDAO {
	return &MerchantDAO{DB: db}
}

func merchantOrderStatus(o *model.MerchantOrder) string { return string(o.Status) }

// CreateMerchant stores an application. A user applies once.
func (dao *MerchantDAO) CreateMerchant(ctx context.Context, merchant *model.Merchant) error {
	logger.Info("Creating merchant application", zap.Uint("userID", merchant.UserID), zap.String("name", merchant.Name))
	if err := dao.DB.WithContext(ctx).Create(merchant).Error; err != nil {
		return conflictError(err, echo_errors.ErrMerchantConflict)
	}
	return nil
}

func (dao *MerchantDAO) GetMerchant(ctx context.Context, merchantID uint) (*model.Merchant, error) {
	var merchant model.Merchant
	if err := dao.DB.WithContext(ctx).First(&merchant, merchantID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantNotFound)
	}
	return &merchant, nil
}

func (dao *MerchantDAO) GetMerchantByUser(ctx context.Context, userID uint) (*model.Merchant, error) {
	var merchant model.Merchant
	if err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).First(&merchant).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantNotFound)
	}
	return &merchant, nil
}

func (dao *MerchantDAO) ListMerchants(ctx context.Context, filter model.MerchantFilter, limit, offset int) ([]model.Merchant, error) {
	q := dao.DB.WithContext(ctx).Order("id DESC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var merchants []model.Merchant
	if err := applyPage(q, limit, offset).Find(&merchants).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantNotFound)
	}
	return merchants, nil
}

func (dao *MerchantDAO) TransitionMerchant(ctx context.Context, merchantID uint, mutate Mutation[model.Merchant]) (*model.Merchant, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrMerchantNotFound,
		func(m *model.Merchant) string { return string(m.Status) },
		lift(mutate), merchantID)
}

func (dao *MerchantDAO) CreateService(ctx context.Context, service *model.MerchantService) error {
	if err := dao.DB.WithContext(ctx).Create(service).Error; err != nil {
		return translateError(err, echo_errors.ErrMerchantServiceNotFound)
	}
	return nil
}

func (dao *MerchantDAO) UpdateService(ctx context.Context, service *model.MerchantService) error {
	result := dao.DB.WithContext(ctx).Model(service).
		Select("name", "description", "price_cents", "unit", "is_active", "updated_at").
		Updates(service)
	if result.Error != nil {
		return translateError(result.Error, echo_errors.ErrMerchantServiceNotFound)
	}
	if result.RowsAffected == 0 {
		return echo_errors.ErrMerchantServiceNotFound
	}
	return nil
}

func (dao *MerchantDAO) GetService(ctx context.Context, serviceID uint) (*model.MerchantService, error) {
	var service model.MerchantService
	if err := dao.DB.WithContext(ctx).First(&service, serviceID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantServiceNotFound)
	}
	return &service, nil
}

func (dao *MerchantDAO) ListServices(ctx context.Context, merchantID uint, activeOnly bool) ([]model.MerchantService, error) {
	q := dao.DB.WithContext(ctx).Where("merchant_id = ?", merchantID).Order("id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var services []model.MerchantService
	if err := q.Find(&services).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantServiceNotFound)
	}
	return services, nil
}

func (dao *MerchantDAO) CreateOrder(ctx context.Context, order *model.MerchantOrder) error {
	logger.Info("Creating merchant order", zap.String("orderNumber", order.OrderNumber), zap.Uint("merchantID", order.MerchantID))
	if err := dao.DB.WithContext(ctx).Create(order).Error; err != nil {
		return conflictError(err, echo_errors.ErrInvalidMerchantOrderData)
	}
	return nil
}

func (dao *MerchantDAO) GetOrder(ctx context.Context, orderID uint) (*model.MerchantOrder, error) {
	var order model.MerchantOrder
	if err := dao.DB.WithContext(ctx).First(&order, orderID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantOrderNotFound)
	}
	return &order, nil
}

func (dao *MerchantDAO) ListOrders(ctx context.Context, filter model.MerchantOrderFilter, limit, offset int) ([]model.MerchantOrder, error) {
	q := dao.DB.WithContext(ctx).Order("id DESC")
	switch {
	case filter.UserID != nil && filter.MerchantID != nil:
		q = q.Where("user_id = ? OR merchant_id = ?", *filter.UserID, *filter.MerchantID)
	case filter.UserID != nil:
		q = q.Where("user_id = ?", *filter.UserID)
	case filter.MerchantID != nil:
		q = q.Where("merchant_id = ?", *filter.MerchantID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	var orders []model.MerchantOrder
	if err := applyPage(q, limit, offset).Find(&orders).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrMerchantOrderNotFound)
	}
	return orders, nil
}

func (dao *MerchantDAO) TransitionOrder(ctx context.Context, orderID uint, mutate Mutation[model.MerchantOrder]) (*model.MerchantOrder, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrMerchantOrderNotFound, merchantOrderStatus, lift(mutate), orderID)
}
