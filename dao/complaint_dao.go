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

type ComplaintDAO struct {
	DB *gorm.DB
}

func NewComplaintDAO(db *gorm.DB) *ComplaintDAO {
	return &ComplaintDAO{DB: db}
}

func complaintStatus(c *model.Complaint) string { return string(c.Status) }

func (dao *ComplaintDAO) CreateComplaint(ctx context.Context, complaint *model.Complaint) error {
	logger.Info("Creating complaint", zap.Uint("userID", complaint.UserID), zap.String("type", complaint.Type))
	if err := dao.DB.WithContext(ctx).Create(complaint).Error; err != nil {
		return translateError(err, echo_errors.ErrComplaintNotFound)
	}
	return nil
}

func (dao *ComplaintDAO) GetComplaint(ctx context.Context, complaintID uint) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := dao.DB.WithContext(ctx).First(&complaint, complaintID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrComplaintNotFound)
	}
	return &complaint, nil
}

func (dao *ComplaintDAO) scope(ctx context.Context, filter model.ComplaintFilter) *gorm.DB {
	q := dao.DB.WithContext(ctx).Model(&model.Complaint{})
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	return q
}

func (dao *ComplaintDAO) ListComplaints(ctx context.Context, filter model.ComplaintFilter, limit, offset int) ([]model.Complaint, error) {
	var complaints []model.Complaint
	if err := applyPage(dao.scope(ctx, filter).Order("id DESC"), limit, offset).Find(&complaints).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrComplaintNotFound)
	}
	return complaints, nil
}

func (dao *ComplaintDAO) CountComplaints(ctx context.Context, filter model.ComplaintFilter) (int64, error) {
	var n int64
	err := dao.scope(ctx, filter).Count(&n).Error
	return n, translateError(err, echo_errors.ErrComplaintNotFound)
}

// CountSubmittedBefore counts complaints nobody has picked up since cutoff.
func (dao *ComplaintDAO) CountSubmittedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&model.Complaint{}).
		Where("status = ? AND created_at < ?", model.ComplaintSubmitted, cutoff).
		Count(&n).Error
	return n, translateError(err, echo_errors.ErrComplaintNotFound)
}

func (dao *ComplaintDAO) TransitionComplaint(ctx context.Context, complaintID uint, mutate Mutation[model.Complaint]) (*model.Complaint, bool, error) {
	return transition(ctx, dao.DB, echo_errors.ErrComplaintNotFound, complaintStatus, lift(mutate), complaintID)
}

// DeleteComplaint removes the complaint when check accepts the locked row.
func (dao *ComplaintDAO) DeleteComplaint(ctx context.Context, complaintID uint, check func(*model.Complaint) error) (*model.Complaint, error) {
	return deleteIf(ctx, dao.DB, complaintID, echo_errors.ErrComplaintNotFound, complaintStatus, check)
}
