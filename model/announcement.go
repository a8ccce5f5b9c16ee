package model

import (
	"time"

	"gorm.io/datatypes"
)

type AnnouncementType string

const (
	AnnouncementEmergency AnnouncementType = "emergency"
	AnnouncementActivity  AnnouncementType = "activity"
	AnnouncementNormal    AnnouncementType = "normal"
)

type TargetType string

const (
	TargetAll      TargetType = "all"
	TargetBuilding TargetType = "building"
	TargetHouse    TargetType = "house"
)

type Announcement struct {
	ID          uint                      `json:"id" gorm:"primaryKey"`
	Title       string                    `json:"title" gorm:"size:255;not null"`
	Content     string                    `json:"content" gorm:"type:text;not null"`
	Type        AnnouncementType          `json:"type" gorm:"size:16;not null"`
	TargetType  TargetType                `json:"target_type" gorm:"size:16;not null"`
	TargetIDs   datatypes.JSONSlice[uint] `json:"target_ids,omitempty"`
	PublisherID uint                      `json:"publisher_id" gorm:"not null"`
	IsPublished bool                      `json:"is_published" gorm:"not null;index"`
	PublishedAt *time.Time                `json:"published_at,omitempty"`
	ReadCount   int64                     `json:"read_count,omitempty" gorm:"-"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func (a Announcement) OwnerID() uint { return a.PublisherID }

type AnnouncementRead struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AnnouncementID uint      `json:"announcement_id" gorm:"not null;uniqueIndex:idx_announcement_reader"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_announcement_reader"`
	ReadAt         time.Time `json:"read_at"`
}

type AnnouncementRequest struct {
	Title      string           `json:"title" binding:"required,max=255"`
	Content    string           `json:"content" binding:"required"`
	Type       AnnouncementType `json:"type" binding:"required,oneof=emergency activity normal"`
	TargetType TargetType       `json:"target_type" binding:"required,oneof=all building house"`
	TargetIDs  []uint           `json:"target_ids"`
}

// Audience describes what a reader can see: every announcement targeted at
// all residents, plus those naming one of these buildings or houses.
type Audience struct {
	BuildingIDs []uint
	HouseIDs    []uint
}
