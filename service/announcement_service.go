// api/service/announcement_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/util"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// IAnnouncementService manages community announcements.
type IAnnouncementService interface {
	CreateAnnouncement(ctx context.Context, actor *model.Actor, req model.AnnouncementRequest) (*model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint, req model.AnnouncementRequest) (*model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint) error
	GetAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint) (*model.Announcement, error)
	ListAnnouncements(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.Announcement, error)
	PublishAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint) (*model.Announcement, error)
	MarkRead(ctx context.Context, actor *model.Actor, announcementID uint) error
}

type AnnouncementStore interface {
	CreateAnnouncement(ctx context.Context, announcement *model.Announcement) error
	UpdateAnnouncement(ctx context.Context, announcement *model.Announcement) error
	DeleteAnnouncement(ctx context.Context, announcementID uint) error
	GetAnnouncement(ctx context.Context, announcementID uint) (*model.Announcement, error)
	ListAnnouncements(ctx context.Context, audience *model.Audience, limit, offset int) ([]model.Announcement, error)
	PublishAnnouncement(ctx context.Context, announcementID uint, at time.Time) (*model.Announcement, bool, error)
	MarkRead(ctx context.Context, announcementID, userID uint, at time.Time) error
	ReadCount(ctx context.Context, announcementID uint) (int64, error)
}

var _ AnnouncementStore = (*dao.AnnouncementDAO)(nil)

// HouseLister resolves houses for audience checks.
type HouseLister interface {
	ListHousesByIDs(ctx context.Context, houseIDs []uint) ([]model.House, error)
}

type AnnouncementService struct {
	store          AnnouncementStore
	bindings       HouseAccess
	houses         HouseLister
	validationUtil *util.ValidationUtil
	Common
}

var _ IAnnouncementService = &AnnouncementService{}

func NewAnnouncementService(store AnnouncementStore, bindings HouseAccess, houses HouseLister, validationUtil *util.ValidationUtil, common Common) *AnnouncementService {
	return &AnnouncementService{
		store:          store,
		bindings:       bindings,
		houses:         houses,
		validationUtil: validationUtil,
		Common:         common,
	}
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, actor *model.Actor, req model.AnnouncementRequest) (*model.Announcement, error) {
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "announcement"}, "create"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateAnnouncement(req); err != nil {
		return nil, err
	}
	announcement := &model.Announcement{
		Title:       req.Title,
		Content:     req.Content,
		Type:        req.Type,
		TargetType:  req.TargetType,
		TargetIDs:   req.TargetIDs,
		PublisherID: actor.ID,
	}
	if err := s.store.CreateAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint, req model.AnnouncementRequest) (*model.Announcement, error) {
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "announcement", ID: announcementID}, "update"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateAnnouncement(req); err != nil {
		return nil, err
	}
	announcement, err := s.store.GetAnnouncement(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.Type = req.Type
	announcement.TargetType = req.TargetType
	announcement.TargetIDs = req.TargetIDs
	if err := s.store.UpdateAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to update announcement %d: %w", announcementID, err)
	}
	return announcement, nil
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint) error {
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "announcement", ID: announcementID}, "delete"); err != nil {
		return err
	}
	if err := s.store.DeleteAnnouncement(ctx, announcementID); err != nil {
		return fmt.Errorf("failed to delete announcement %d: %w", announcementID, err)
	}
	return nil
}

// GetAnnouncement shows staff every announcement with its read count.
// Residents only see published announcements addressed to them.
func (s *AnnouncementService) GetAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint) (*model.Announcement, error) {
	announcement, err := s.store.GetAnnouncement(ctx, announcementID)
	if err != nil {
		return nil, err
	}
	if engine.IsPrivileged(actor) {
		count, err := s.store.ReadCount(ctx, announcementID)
		if err != nil {
			return nil, err
		}
		announcement.ReadCount = count
		return announcement, nil
	}

	audience, err := s.audienceOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !announcement.IsPublished || !Addresses(announcement, audience) {
		return nil, echo_errors.ErrAnnouncementNotFound
	}
	return announcement, nil
}

// ListAnnouncements shows staff every announcement. Residents see the
// published announcements addressed to their bound houses.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.Announcement, error) {
	if engine.IsPrivileged(actor) {
		return s.store.ListAnnouncements(ctx, nil, limit, offset)
	}
	audience, err := s.audienceOf(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.store.ListAnnouncements(ctx, &audience, limit, offset)
}

func (s *AnnouncementService) PublishAnnouncement(ctx context.Context, actor *model.Actor, announcementID uint) (*model.Announcement, error) {
	res := workflow.Result{Entity: "announcement", ID: announcementID, Action: "publish", From: "draft", To: "published"}
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "announcement", ID: announcementID}, "publish"); err != nil {
		s.record(ctx, actor, res, false, err)
		return nil, err
	}
	announcement, changed, err := s.store.PublishAnnouncement(ctx, announcementID, s.now())
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to publish announcement %d: %w", announcementID, err)
	}
	if changed && s.Events != nil {
		logger.Info("Announcement published", zap.Uint("announcementID", announcementID))
		s.Events.Publish(ctx, util.EventAnnouncementPublished, *announcement)
	}
	return announcement, nil
}

func (s *AnnouncementService) MarkRead(ctx context.Context, actor *model.Actor, announcementID uint) error {
	if _, err := s.GetAnnouncement(ctx, actor, announcementID); err != nil {
		return err
	}
	return s.store.MarkRead(ctx, announcementID, actor.ID, s.now())
}

func (s *AnnouncementService) audienceOf(ctx context.Context, actor *model.Actor) (model.Audience, error) {
	houseIDs, err := s.bindings.ApprovedHouseIDs(ctx, actor.ID)
	if err != nil {
		return model.Audience{}, fmt.Errorf("failed to load bound houses: %w", err)
	}
	houses, err := s.houses.ListHousesByIDs(ctx, houseIDs)
	if err != nil {
		return model.Audience{}, err
	}
	audience := model.Audience{HouseIDs: houseIDs}
	seen := make(map[uint]bool)
	for _, h := range houses {
		if !seen[h.BuildingID] {
			seen[h.BuildingID] = true
			audience.BuildingIDs = append(audience.BuildingIDs, h.BuildingID)
		}
	}
	return audience, nil
}

// Addresses reports whether the announcement targets the audience.
func Addresses(a *model.Announcement, audience model.Audience) bool {
	switch a.TargetType {
	case model.TargetAll:
		return true
	case model.TargetBuilding:
		return intersects(a.TargetIDs, audience.BuildingIDs)
	case model.TargetHouse:
		return intersects(a.TargetIDs, audience.HouseIDs)
	default:
		return false
	}
}

func intersects(a, b []uint) bool {
	set := make(map[uint]struct{}, len(b))
	for _, v := range b {
		set[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
