// api/util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/messaging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

// Channel name recorded in notifications.sent_via.
const (
	ChannelKafka = "kafka"
	ChannelLog   = "log"
)

// NotificationService pushes stored notifications to the outbound channel.
type NotificationService struct {
	publisher messaging.Publisher
	channel   string
}

func NewNotificationService(publisher messaging.Publisher) *NotificationService {
	if publisher == nil {
		return &NotificationService{publisher: messaging.LogPublisher{}, channel: ChannelLog}
	}
	if _, ok := publisher.(messaging.LogPublisher); ok {
		return &NotificationService{publisher: publisher, channel: ChannelLog}
	}
	return &NotificationService{publisher: publisher, channel: ChannelKafka}
}

func (n *NotificationService) Channel() string {
	return n.channel
}

// Deliver publishes each notification keyed by its recipient and returns the
// ids that were accepted and those that failed.
func (n *NotificationService) Deliver(ctx context.Context, notifications []model.Notification) (sent, failed []uint) {
	for _, note := range notifications {
		key := fmt.Sprintf("user-%d", note.UserID)
		if err := n.publisher.Publish(ctx, key, note); err != nil {
			logger.Warn("Failed to deliver notification",
				zap.Error(err),
				zap.Uint("notificationID", note.ID),
				zap.Uint("userID", note.UserID))
			failed = append(failed, note.ID)
			continue
		}
		sent = append(sent, note.ID)
	}
	logger.Info("Notifications delivered",
		zap.String("channel", n.channel),
		zap.Int("sent", len(sent)),
		zap.Int("failed", len(failed)))
	return sent, failed
}
