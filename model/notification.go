package model

import "time"

type NotificationType string

const (
	NotificationWorkOrder    NotificationType = "work_order"
	NotificationComplaint    NotificationType = "complaint"
	NotificationBinding      NotificationType = "binding"
	NotificationVisitor      NotificationType = "visitor"
	NotificationAnnouncement NotificationType = "announcement"
	NotificationMerchant     NotificationType = "merchant"
	NotificationPayment      NotificationType = "payment"
	NotificationSystem       NotificationType = "system"
)

type SentStatus string

const (
	SentPending SentStatus = "pending"
	SentOK      SentStatus = "sent"
	SentFailed  SentStatus = "failed"
)

type Notification struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	UserID     uint             `json:"user_id" gorm:"not null;index"`
	Title      string           `json:"title" gorm:"size:255;not null"`
	Content    string           `json:"content" gorm:"type:text"`
	Type       NotificationType `json:"type" gorm:"size:20;not null"`
	RelatedID  uint             `json:"related_id,omitempty"`
	SentVia    string           `json:"sent_via" gorm:"size:16;not null"`
	SentStatus SentStatus       `json:"sent_status" gorm:"size:16;not null"`
	IsRead     bool             `json:"is_read" gorm:"not null;index"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func (n Notification) OwnerID() uint { return n.UserID }

// NotificationRequest asks for the same message to be delivered to each
// of UserIDs.
type NotificationRequest struct {
	UserIDs   []uint           `json:"user_ids"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Type      NotificationType `json:"type"`
	RelatedID uint             `json:"related_id,omitempty"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}
