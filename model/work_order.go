package model

import (
	"time"

	"gorm.io/datatypes"
)

type WorkOrderStatus string

const (
	WorkOrderPending         WorkOrderStatus = "pending"
	WorkOrderProcessing      WorkOrderStatus = "processing"
	WorkOrderCompleted       WorkOrderStatus = "completed"
	WorkOrderRejected        WorkOrderStatus = "rejected"
	WorkOrderWaitingResident WorkOrderStatus = "waiting_resident"
)

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

type WorkOrder struct {
	ID                 uint                        `json:"id" gorm:"primaryKey"`
	UserID             uint                        `json:"user_id" gorm:"not null;index"`
	HouseID            uint                        `json:"house_id" gorm:"not null;index"`
	Type               string                      `json:"type" gorm:"size:32;not null"`
	Description        string                      `json:"description" gorm:"type:text;not null"`
	Images             datatypes.JSONSlice[string] `json:"images,omitempty"`
	Urgency            Urgency                     `json:"urgency" gorm:"size:16;not null"`
	Status             WorkOrderStatus             `json:"status" gorm:"size:20;not null;index"`
	AssigneeID         *uint                       `json:"assignee_id,omitempty" gorm:"index"`
	AssignedAt         *time.Time                  `json:"assigned_at,omitempty"`
	ExpectedFinishAt   *time.Time                  `json:"expected_finish_at,omitempty"`
	CompletedAt        *time.Time                  `json:"completed_at,omitempty"`
	RejectReason       string                      `json:"reject_reason,omitempty" gorm:"type:text"`
	StaffRemark        string                      `json:"staff_remark,omitempty" gorm:"type:text"`
	ResidentSupplement string                      `json:"resident_supplement,omitempty" gorm:"type:text"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

func (w WorkOrder) OwnerID() uint { return w.UserID }

type WorkOrderComment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	WorkOrderID uint      `json:"work_order_id" gorm:"not null;index"`
	UserID      uint      `json:"user_id" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

type WorkOrderRating struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	WorkOrderID      uint      `json:"work_order_id" gorm:"not null;uniqueIndex"`
	UserID           uint      `json:"user_id" gorm:"not null"`
	ServiceRating    int       `json:"service_rating" gorm:"not null"`
	EfficiencyRating int       `json:"efficiency_rating" gorm:"not null"`
	Comment          string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

type WorkOrderFilter struct {
	UserID     *uint
	AssigneeID *uint
	Status     WorkOrderStatus
}

type CreateWorkOrderRequest struct {
	HouseID     uint     `json:"house_id" binding:"required"`
	Type        string   `json:"type" binding:"required,max=32"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images"`
	Urgency     Urgency  `json:"urgency" binding:"omitempty,oneof=high medium low"`
}

type AssignWorkOrderRequest struct {
	AssigneeID       uint       `json:"assignee_id" binding:"required"`
	ExpectedFinishAt *time.Time `json:"expected_finish_at"`
}

type WorkOrderTransitionRequest struct {
	Status WorkOrderStatus `json:"status" binding:"required"`
	Note   string          `json:"note"`
}

type SupplementRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type RatingRequest struct {
	ServiceRating    int    `json:"service_rating" binding:"required,min=1,max=5"`
	EfficiencyRating int    `json:"efficiency_rating" binding:"required,min=1,max=5"`
	Comment          string `json:"comment"`
}

type WorkOrderStatistics struct {
	Total           int64 `json:"total"`
	Pending         int64 `json:"pending"`
	Processing      int64 `json:"processing"`
	WaitingResident int64 `json:"waiting_resident"`
	Completed       int64 `json:"completed"`
	Rejected        int64 `json:"rejected"`
}
