// api/service/notification_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/dao"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/util"
)

// INotificationService lists and acknowledges a user's notifications and
// persists the ones requested by other services.
type INotificationService interface {
	ListNotifications(ctx context.Context, actor *model.Actor, unreadOnly bool, limit, offset int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, actor *model.Actor) (*model.UnreadCount, error)
	MarkRead(ctx context.Context, actor *model.Actor, notificationID uint) error
	MarkAllRead(ctx context.Context, actor *model.Actor) (int64, error)
	Send(ctx context.Context, req model.NotificationRequest) ([]model.Notification, error)
}

type NotificationStore interface {
	CreateNotifications(ctx context.Context, notifications []model.Notification) error
	SetSentStatus(ctx context.Context, ids []uint, status model.SentStatus) error
	ListNotifications(ctx context.Context, userID uint, unreadOnly bool, limit, offset int) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID uint, at time.Time) error
	MarkAllRead(ctx context.Context, userID uint, at time.Time) (int64, error)
}

var _ NotificationStore = (*dao.NotificationDAO)(nil)

// Deliverer pushes stored notifications to an outbound channel.
type Deliverer interface {
	Channel() string
	Deliver(ctx context.Context, notifications []model.Notification) (sent, failed []uint)
}

var _ Deliverer = (*util.NotificationService)(nil)

// AudienceResolver finds the residents an announcement reaches.
type AudienceResolver interface {
	ApprovedUserIDs(ctx context.Context, houseIDs []uint) ([]uint, error)
	HouseIDsInBuildings(ctx context.Context, buildingIDs []uint) ([]uint, error)
}

// Subscriber is the subscribing half of util.EventBus.
type Subscriber interface {
	Subscribe(eventType string, handler util.EventHandler)
}

type NotificationService struct {
	store     NotificationStore
	deliverer Deliverer
	audience  AudienceResolver
	Common
}

var _ INotificationService = &NotificationService{}

// NewNotificationService subscribes the service to notification requests
// and published announcements when bus is not nil.
func NewNotificationService(store NotificationStore, deliverer Deliverer, audience AudienceResolver, bus Subscriber, common Common) *NotificationService {
	s := &NotificationService{
		store:     store,
		deliverer: deliverer,
		audience:  audience,
		Common:    common,
	}
	if bus != nil {
		bus.Subscribe(util.EventNotify, s.handleNotify)
		bus.Subscribe(util.EventAnnouncementPublished, s.handleAnnouncement)
	}
	return s
}

func (s *NotificationService) ListNotifications(ctx context.Context, actor *model.Actor, unreadOnly bool, limit, offset int) ([]model.Notification, error) {
	return s.store.ListNotifications(ctx, actor.ID, unreadOnly, limit, offset)
}

func (s *NotificationService) UnreadCount(ctx context.Context, actor *model.Actor) (*model.UnreadCount, error) {
	n, err := s.store.UnreadCount(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return &model.UnreadCount{Count: n}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, actor *model.Actor, notificationID uint) error {
	return s.store.MarkRead(ctx, notificationID, actor.ID, s.now())
}

func (s *NotificationService) MarkAllRead(ctx context.Context, actor *model.Actor) (int64, error) {
	return s.store.MarkAllRead(ctx, actor.ID, s.now())
}

// Send stores one notification per recipient, then delivers them and
// records the delivery outcome. A delivery failure does not fail the call.
func (s *NotificationService) Send(ctx context.Context, req model.NotificationRequest) ([]model.Notification, error) {
	if len(req.UserIDs) == 0 {
		return []model.Notification{}, nil
	}
	notifications := make([]model.Notification, 0, len(req.UserIDs))
	for _, userID := range dedupe(req.UserIDs) {
		notifications = append(notifications, model.Notification{
			UserID:     userID,
			Title:      req.Title,
			Content:    req.Content,
			Type:       req.Type,
			RelatedID:  req.RelatedID,
			SentVia:    s.channel(),
			SentStatus: model.SentPending,
		})
	}
	if err := s.store.CreateNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to store notifications: %w", err)
	}
	if s.deliverer == nil {
		return notifications, nil
	}

	sent, failed := s.deliverer.Deliver(ctx, notifications)
	if err := s.store.SetSentStatus(ctx, sent, model.SentOK); err != nil {
		logger.Warn("Failed to mark notifications sent", zap.Error(err))
	}
	if err := s.store.SetSentStatus(ctx, failed, model.SentFailed); err != nil {
		logger.Warn("Failed to mark notifications failed", zap.Error(err))
	}
	status := make(map[uint]model.SentStatus, len(notifications))
	for _, id := range sent {
		status[id] = model.SentOK
	}
	for _, id := range failed {
		status[id] = model.SentFailed
	}
	for i := range notifications {
		if st, ok := status[notifications[i].ID]; ok {
			notifications[i].SentStatus = st
		}
	}
	return notifications, nil
}

func (s *NotificationService) handleNotify(ctx context.Context, event util.Event) error {
	req, ok := event.Payload.(model.NotificationRequest)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	_, err := s.Send(ctx, req)
	return err
}

func (s *NotificationService) handleAnnouncement(ctx context.Context, event util.Event) error {
	announcement, ok := event.Payload.(model.Announcement)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	userIDs, err := s.recipients(ctx, &announcement)
	if err != nil {
		return fmt.Errorf("failed to resolve audience of announcement %d: %w", announcement.ID, err)
	}
	logger.Info("Notifying announcement audience",
		zap.Uint("announcementID", announcement.ID),
		zap.Int("recipients", len(userIDs)))
	_, err = s.Send(ctx, model.NotificationRequest{
		UserIDs:   userIDs,
		Title:     announcement.Title,
		Content:   announcement.Content,
		Type:      model.NotificationAnnouncement,
		RelatedID: announcement.ID,
	})
	return err
}

func (s *NotificationService) recipients(ctx context.Context, a *model.Announcement) ([]uint, error) {
	switch a.TargetType {
	case model.TargetAll:
		return s.audience.ApprovedUserIDs(ctx, nil)
	case model.TargetBuilding:
		houseIDs, err := s.audience.HouseIDsInBuildings(ctx, a.TargetIDs)
		if err != nil {
			return nil, err
		}
		if houseIDs == nil {
			houseIDs = []uint{}
		}
		return s.audience.ApprovedUserIDs(ctx, houseIDs)
	case model.TargetHouse:
		return s.audience.ApprovedUserIDs(ctx, append([]uint{}, a.TargetIDs...))
	default:
		return []uint{}, nil
	}
}

func (s *NotificationService) channel() string {
	if s.deliverer == nil {
		return util.ChannelLog
	}
	return s.deliverer.Channel()
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
