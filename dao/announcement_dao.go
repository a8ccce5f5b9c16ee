package dao

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type AnnouncementDAO struct {
	DB *gorm.DB
}

func NewAnnouncementDAO(db *gorm.DB) *AnnouncementDAO {
	return &AnnouncementDAO{DB: db}
}

func (dao *AnnouncementDAO) CreateAnnouncement(ctx context.Context, announcement *model.Announcement) error {
	logger.Info("Creating announcement", zap.String("title", announcement.Title))
	if err := dao.DB.WithContext(ctx).Create(announcement).Error; err != nil {
		return translateError(err, echo_errors.ErrAnnouncementNotFound)
	}
	return nil
}

func (dao *AnnouncementDAO) UpdateAnnouncement(ctx context.Context, announcement *model.Announcement) error {
	result := dao.DB.WithContext(ctx).Model(announcement).
		Select("title", "content", "type", "target_type", "target_ids", "updated_at").
		Updates(announcement)
	if result.Error != nil {
		return translateError(result.Error, echo_errors.ErrAnnouncementNotFound)
	}
	if result.RowsAffected == 0 {
		return echo_errors.ErrAnnouncementNotFound
	}
	return nil
}

func (dao *AnnouncementDAO) DeleteAnnouncement(ctx context.Context, announcementID uint) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", announcementID).Delete(&model.AnnouncementRead{}).Error; err != nil {
			return translateError(err, echo_errors.ErrAnnouncementNotFound)
		}
		result := tx.Delete(&model.Announcement{}, announcementID)
		if result.Error != nil {
			return translateError(result.Error, echo_errors.ErrAnnouncementNotFound)
		}
		if result.RowsAffected == 0 {
			return echo_errors.ErrAnnouncementNotFound
		}
		return nil
	})
}

func (dao *AnnouncementDAO) GetAnnouncement(ctx context.Context, announcementID uint) (*model.Announcement, error) {
	var announcement model.Announcement
	if err := dao.DB.WithContext(ctx).First(&announcement, announcementID).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrAnnouncementNotFound)
	}
	return &announcement, nil
}

// ListAnnouncements returns announcements newest first. A nil audience lists
// everything, drafts included. Otherwise only published announcements
// addressed to the audience are returned.
func (dao *AnnouncementDAO) ListAnnouncements(ctx context.Context, audience *model.Audience, limit, offset int) ([]model.Announcement, error) {
	q := dao.DB.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if audience != nil {
		q = q.Where("is_published = ?", true).Where(dao.addressedTo(*audience))
	}
	var announcements []model.Announcement
	if err := applyPage(q, limit, offset).Find(&announcements).Error; err != nil {
		return nil, translateError(err, echo_errors.ErrAnnouncementNotFound)
	}
	return announcements, nil
}

func (dao *AnnouncementDAO) addressedTo(audience model.Audience) clause.Expression {
	exprs := []clause.Expression{clause.Eq{Column: "target_type", Value: model.TargetAll}}
	if len(audience.BuildingIDs) > 0 {
		exprs = append(exprs, dao.targets(model.TargetBuilding, audience.BuildingIDs))
	}
	if len(audience.HouseIDs) > 0 {
		exprs = append(exprs, dao.targets(model.TargetHouse, audience.HouseIDs))
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return clause.Or(exprs...)
}

// targets matches announcements of targetType whose target_ids share an id
// with ids.
func (dao *AnnouncementDAO) targets(targetType model.TargetType, ids []uint) clause.Expression {
	if dao.DB.Dialector.Name() == "mysql" {
		encoded, _ := json.Marshal(ids)
		return clause.And(
			clause.Eq{Column: "target_type", Value: targetType},
			datatypes.JSONOverlaps(datatypes.Column("target_ids"), string(encoded)),
		)
	}
	return gorm.Expr("target_type = ? AND EXISTS (SELECT 1 FROM jsonb_array_elements_text(target_ids) AS t(id) WHERE t.id::bigint IN ?)",
		targetType, ids)
}

// PublishAnnouncement flips an unpublished announcement. It reports false
// when the announcement was already published.
func (dao *AnnouncementDAO) PublishAnnouncement(ctx context.Context, announcementID uint, at time.Time) (*model.Announcement, bool, error) {
	var announcement model.Announcement
	var changed bool
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&announcement, announcementID).Error; err != nil {
			return translateError(err, echo_errors.ErrAnnouncementNotFound)
		}
		if announcement.IsPublished {
			return nil
		}
		result := tx.Model(&announcement).
			Where("is_published = ?", false).
			Updates(map[string]interface{}{"is_published": true, "published_at": at})
		if result.Error != nil {
			return translateError(result.Error, echo_errors.ErrAnnouncementNotFound)
		}
		changed = result.RowsAffected > 0
		announcement.IsPublished = true
		announcement.PublishedAt = &at
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &announcement, changed, nil
}

// MarkRead records a read once per user.
func (dao *AnnouncementDAO) MarkRead(ctx context.Context, announcementID, userID uint, at time.Time) error {
	read := model.AnnouncementRead{AnnouncementID: announcementID, UserID: userID, ReadAt: at}
	err := dao.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&read).Error
	return translateError(err, echo_errors.ErrAnnouncementNotFound)
}

func (dao *AnnouncementDAO) ReadCount(ctx context.Context, announcementID uint) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&model.AnnouncementRead{}).
		Where("announcement_id = ?", announcementID).
		Count(&n).Error
	return n, translateError(err, echo_errors.ErrAnnouncementNotFound)
}
