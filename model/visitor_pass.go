package model

import "time"

type PassStatus string

const (
	PassActive    PassStatus = "active"
	PassUsed      PassStatus = "used"
	PassExpired   PassStatus = "expired"
	PassCancelled PassStatus = "cancelled"
)

// VisitorPass is valid over [ValidFrom, ValidTo). An active pass past its
// window reads as expired without being rewritten.
type VisitorPass struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	HouseID      uint       `json:"house_id" gorm:"not null"`
	VisitorName  string     `json:"visitor_name" gorm:"size:50;not null"`
	VisitorPhone string     `json:"visitor_phone" gorm:"size:20"`
	PassCode     string     `json:"pass_code" gorm:"size:36;uniqueIndex;not null"`
	ValidFrom    time.Time  `json:"valid_from" gorm:"not null"`
	ValidTo      time.Time  `json:"valid_to" gorm:"not null"`
	Status       PassStatus `json:"status" gorm:"size:16;not null;index"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	CancelledAt  *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (p VisitorPass) OwnerID() uint { return p.UserID }

// VisitorPassFilter matches the status as seen at At: an active pass whose
// window closed by then counts as expired.
type VisitorPassFilter struct {
	UserID *uint
	Status PassStatus
	At     time.Time
}

type CreateVisitorPassRequest struct {
	HouseID      uint      `json:"house_id" binding:"required"`
	VisitorName  string    `json:"visitor_name" binding:"required,max=50"`
	VisitorPhone string    `json:"visitor_phone"`
	ValidFrom    time.Time `json:"valid_from" binding:"required"`
	ValidTo      time.Time `json:"valid_to" binding:"required"`
}

type UsePassRequest struct {
	PassCode string `json:"pass_code" binding:"required"`
}
