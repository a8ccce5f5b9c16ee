package model

import (
	"time"

	"gorm.io/datatypes"
)

type ComplaintStatus string

const (
	ComplaintSubmitted  ComplaintStatus = "submitted"
	ComplaintProcessing ComplaintStatus = "processing"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintRejected   ComplaintStatus = "rejected"
)

type Complaint struct {
	ID            uint                        `json:"id" gorm:"primaryKey"`
	UserID        uint                        `json:"user_id" gorm:"not null;index"`
	HouseID       uint                        `json:"house_id" gorm:"not null;index"`
	Type          string                      `json:"type" gorm:"size:50;not null"`
	Title         string                      `json:"title" gorm:"size:255;not null"`
	Content       string                      `json:"content" gorm:"type:text;not null"`
	ImageURLs     datatypes.JSONSlice[string] `json:"image_urls,omitempty"`
	Status        ComplaintStatus             `json:"status" gorm:"size:20;not null;index"`
	ProcessorID   *uint                       `json:"processor_id,omitempty"`
	ProcessRemark string                      `json:"process_remark,omitempty" gorm:"type:text"`
	ProcessedAt   *time.Time                  `json:"processed_at,omitempty"`
	ResolvedAt    *time.Time                  `json:"resolved_at,omitempty"`
	CreatedAt     time.Time                   `json:"submitted_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (c Complaint) OwnerID() uint { return c.UserID }

type ComplaintFilter struct {
	UserID *uint
	Status ComplaintStatus
	Type   string
}

type CreateComplaintRequest struct {
	HouseID   uint     `json:"house_id" binding:"required"`
	Type      string   `json:"type" binding:"required,max=50"`
	Title     string   `json:"title" binding:"required,max=255"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}

type ProcessComplaintRequest struct {
	Status ComplaintStatus `json:"status" binding:"required"`
	Remark string          `json:"remark"`
}

type ComplaintStatistics struct {
	Total            int64  `json:"total"`
	Submitted        int64  `json:"submitted"`
	Processing       int64  `json:"processing"`
	Resolved         int64  `json:"resolved"`
	Rejected         int64  `json:"rejected"`
	PendingOver3Days *int64 `json:"pending_over_3_days,omitempty"`
}

type ComplaintType struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var ComplaintTypes = []ComplaintType{
	{Value: "noise", Label: "Noise disturbance"},
	{Value: "sanitation", Label: "Sanitation"},
	{Value: "public_facilities", Label: "Public facilities"},
	{Value: "safety_hazard", Label: "Safety hazard"},
	{Value: "property_service", Label: "Property service"},
	{Value: "neighbor_dispute", Label: "Neighbor dispute"},
	{Value: "illegal_parking", Label: "Illegal parking"},
	{Value: "other", Label: "Other"},
}
