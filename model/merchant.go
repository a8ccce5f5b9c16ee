package model

import (
	"time"

	"gorm.io/datatypes"
)

type MerchantStatus string

const (
	MerchantPending  MerchantStatus = "pending"
	MerchantApproved MerchantStatus = "approved"
	MerchantRejected MerchantStatus = "rejected"
)

type MerchantCategory string

const (
	CategoryRepairService MerchantCategory = "REPAIR_SERVICE"
	CategoryLifeService   MerchantCategory = "LIFE_SERVICE"
	CategoryRetailStore   MerchantCategory = "RETAIL_STORE"
	CategoryFoodBeverage  MerchantCategory = "FOOD_BEVERAGE"
)

type Merchant struct {
	ID            uint                        `json:"id" gorm:"primaryKey"`
	UserID        uint                        `json:"user_id" gorm:"not null;uniqueIndex"`
	Name          string                      `json:"name" gorm:"size:100;not null"`
	Category      MerchantCategory            `json:"category" gorm:"size:32"`
	Address       string                      `json:"address" gorm:"size:200;not null"`
	Phone         string                      `json:"phone" gorm:"size:20;not null"`
	BusinessHours string                      `json:"business_hours" gorm:"size:100"`
	Description   string                      `json:"description" gorm:"type:text"`
	Images        datatypes.JSONSlice[string] `json:"images,omitempty"`
	Status        MerchantStatus              `json:"status" gorm:"size:16;not null;index"`
	ApproverID    *uint                       `json:"approver_id,omitempty"`
	ApprovedAt    *time.Time                  `json:"approved_at,omitempty"`
	RejectReason  string                      `json:"reject_reason,omitempty" gorm:"size:255"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (m Merchant) OwnerID() uint { return m.UserID }

type MerchantService struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MerchantID  uint      `json:"merchant_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	PriceCents  int64     `json:"price_cents" gorm:"not null"`
	Unit        string    `json:"unit" gorm:"size:20"`
	IsActive    bool      `json:"is_active" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MerchantOrderStatus string

const (
	MerchantOrderPending    MerchantOrderStatus = "pending"
	MerchantOrderPaid       MerchantOrderStatus = "paid"
	MerchantOrderProcessing MerchantOrderStatus = "processing"
	MerchantOrderCompleted  MerchantOrderStatus = "completed"
	MerchantOrderCancelled  MerchantOrderStatus = "cancelled"
)

type MerchantOrder struct {
	ID             uint                `json:"id" gorm:"primaryKey"`
	OrderNumber    string              `json:"order_number" gorm:"size:32;uniqueIndex;not null"`
	MerchantID     uint                `json:"merchant_id" gorm:"not null;index"`
	ServiceID      uint                `json:"service_id" gorm:"not null"`
	UserID         uint                `json:"user_id" gorm:"not null;index"`
	Quantity       int                 `json:"quantity" gorm:"not null"`
	TotalCents     int64               `json:"total_cents" gorm:"not null"`
	ScheduledAt    *time.Time          `json:"scheduled_at,omitempty"`
	ServiceAddress string              `json:"service_address" gorm:"size:200"`
	ContactName    string              `json:"contact_name" gorm:"size:50"`
	ContactPhone   string              `json:"contact_phone" gorm:"size:20"`
	Remarks        string              `json:"remarks,omitempty" gorm:"type:text"`
	Status         MerchantOrderStatus `json:"status" gorm:"size:16;not null;index"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func (o MerchantOrder) OwnerID() uint { return o.UserID }

type MerchantFilter struct {
	Status MerchantStatus
}

type MerchantOrderFilter struct {
	UserID     *uint
	MerchantID *uint
	Status     MerchantOrderStatus
}

type MerchantApplicationRequest struct {
	Name          string           `json:"name" binding:"required,max=100"`
	Category      MerchantCategory `json:"category" binding:"omitempty,oneof=REPAIR_SERVICE LIFE_SERVICE RETAIL_STORE FOOD_BEVERAGE"`
	Address       string           `json:"address" binding:"required"`
	Phone         string           `json:"phone" binding:"required"`
	BusinessHours string           `json:"business_hours"`
	Description   string           `json:"description"`
	Images        []string         `json:"images"`
}

type MerchantServiceRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	Unit        string `json:"unit"`
	IsActive    *bool  `json:"is_active"`
}

type CreateMerchantOrderRequest struct {
	ServiceID      uint       `json:"service_id" binding:"required"`
	Quantity       int        `json:"quantity" binding:"omitempty,min=1"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	ServiceAddress string     `json:"service_address" binding:"required"`
	ContactName    string     `json:"contact_name" binding:"required"`
	ContactPhone   string     `json:"contact_phone" binding:"required"`
	Remarks        string     `json:"remarks"`
}

type MerchantOrderTransitionRequest struct {
	Status MerchantOrderStatus `json:"status" binding:"required"`
}
