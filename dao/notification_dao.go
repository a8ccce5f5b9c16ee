package dao

import (
	"context"
	"time"

	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type NotificationDAO struct {
	DB *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{DB: db}
}

func (dao *NotificationDAO) CreateNotifications(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	if err := dao.DB.WithContext(ctx).CreateInBatches(notifications, 100).Error; err != nil {
		return translateError(err, echo_errors.ErrNotificationNotFound)
	}
	return nil
}

func (dao *NotificationDAO) SetSentStatus(ctx context.Context, ids []uint, status model.SentStatus) error {
	if len(ids) == 0 {
		return nil
	}
	err := dao.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("id IN ?", ids).
		Update("sent_status", status).Error
	return translateError(err, echo_errors.ErrNotificationNotFound)
}

func (dao *NotificationDAO) ListNotifications(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]model.Notification, error) {
	q := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC")
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}
	var notifications []model.Notification
	if err := applyPage(q, limit, offset).Find(&notifications).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrNotificationNotFound)
	}
	return notifications, nil
}

func (dao *NotificationDAO) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, translateError(err, echo_errors.ErrNotificationNotFound)
}

// MarkRead only touches the user's own notification.
func (dao *NotificationDAO) MarkRead(ctx context.Context, notificationID, userID uint, at time.Time) error {
	var notification model.Notification
	if err := dao.DB.WithContext(ctx).Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error; err != nil {
		return translateError(err, echo_errors.ErrNotificationNotFound)
	}
	if notification.IsRead {
		return nil
	}
	err := dao.DB.WithContext(ctx).Model(&notification).
		Updates(map[string]interface{}{"is_read": true, "read_at": at}).Error
	return translateError(err, echo_errors.ErrNotificationNotFound)
}

func (dao *NotificationDAO) MarkAllRead(ctx context.Context, userID uint, at time.Time) (int64, error) {
	result := dao.DB.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	return result.RowsAffected, translateError(result.Error, echo_errors.ErrNotificationNotFound)
}
