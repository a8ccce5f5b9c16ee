package dao

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type WorkOrderDAO struct {
	DB *gorm.DB
}

func NewWorkOrderDAO(db *gorm.DB) *WorkOrderDAO {
	return &WorkOrderDAO{DB: db}
}

func (dao *WorkOrderDAO) CreateWorkOrder(ctx context.Context, order *model.WorkOrder) error {
	logger.Info("Creating work order", zap.Uint("userID", order.UserID), zap.Uint("houseID", order.HouseID))
	if err := dao.DB.WithContext(ctx).Create(order).Error; err != nil {
		return translateError(err, echo_errors.ErrWorkOrderNotFound)
	}
	return nil
}

func (dao *WorkOrderDAO) GetWorkOrder(ctx context.Context, orderID uint) (*model.WorkOrder, error) {
	var order model.WorkOrder
	if err := dao.DB.WithContext(ctx).First(&order, orderID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrWorkOrderNotFound)
	}
	return &order, nil
}

func (dao *WorkOrderDAO) scope(ctx context.Context, filter model.WorkOrderFilter) *gorm.DB {
	q := dao.DB.WithContext(ctx).Model(&model.WorkOrder{})
	switch {
	case filter.UserID != nil && filter.AssigneeID != nil:
		q = q.Where("user_id = ? OR assignee_id = ?", *filter.UserID, *filter.AssigneeID)
	case filter.UserID != nil:
		q = q.Where("user_id = ?", *filter.UserID)
	case filter.AssigneeID != nil:
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

func (dao *WorkOrderDAO) ListWorkOrders(ctx context.Context, filter model.WorkOrderFilter, limit, offset int) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	if err := applyPage(dao.scope(ctx, filter).Order("id DESC"), limit, offset).Find(&orders).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrWorkOrderNotFound)
	}
	return orders, nil
}

// CountByStatus returns the number of matching orders per status.
func (dao *WorkOrderDAO) CountByStatus(ctx context.Context, filter model.WorkOrderFilter) (map[model.WorkOrderStatus]int64, error) {
	var rows []struct {
		Status model.WorkOrderStatus
		Count  int64
	}
	filter.Status = ""
	if err := dao.scope(ctx, filter).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrWorkOrderNotFound)
	}
	counts := make(map[model.WorkOrderStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (dao *WorkOrderDAO) TransitionWorkOrder(ctx context.Context, orderID uint, mutate Mutation[model.WorkOrder]) (*model.WorkOrder, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrWorkOrderNotFound,
		func(w *model.WorkOrder) string { return string(w.Status) },
		lift(mutate), orderID)
}

func (dao *WorkOrderDAO) AddComment(ctx context.Context, comment *model.WorkOrderComment) error {
	if err := dao.DB.WithContext(ctx).Create(comment).Error; err != nil {
		return translateError(err, echo_errors.ErrWorkOrderNotFound)
	}
	return nil
}

func (dao *WorkOrderDAO) ListComments(ctx context.Context, orderID uint) ([]model.WorkOrderComment, error) {
	var comments []model.WorkOrderComment
	if err := dao.DB.WithContext(ctx).Where("work_order_id = ?", orderID).Order("id").Find(&comments).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrWorkOrderNotFound)
	}
	return comments, nil
}

// CreateRating stores the single rating an order may receive.
func (dao *WorkOrderDAO) CreateRating(ctx context.Context, rating *model.WorkOrderRating) error {
	if err := dao.DB.WithContext(ctx).Create(rating).Error; err != nil {
		return conflictError(err, echo_errors.ErrAlreadyRated)
	}
	return nil
}
