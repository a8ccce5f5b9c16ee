package model

import "time"

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

// PropertyFeeBill is overdue once DueDate has passed while unpaid; the
// stored status stays pending.
type PropertyFeeBill struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	HouseID       uint       `json:"house_id" gorm:"not null;uniqueIndex:idx_bill_house_period"`
	BillingPeriod string     `json:"billing_period" gorm:"size:7;not null;uniqueIndex:idx_bill_house_period"`
	AmountCents   int64      `json:"amount_cents" gorm:"not null"`
	DueDate       time.Time  `json:"due_date" gorm:"not null"`
	Status        BillStatus `json:"status" gorm:"size:16;not null;index"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BillFilter struct {
	HouseIDs []uint
	Status   BillStatus
}

type CreateBillRequest struct {
	HouseID       uint      `json:"house_id" binding:"required"`
	BillingPeriod string    `json:"billing_period" binding:"required,len=7"`
	AmountCents   int64     `json:"amount_cents" binding:"required,gt=0"`
	DueDate       time.Time `json:"due_date" binding:"required"`
}

type PaymentStatus string

const (
	PaymentCreated  PaymentStatus = "created"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentGateway string

const (
	GatewayWechat PaymentGateway = "wechat"
	GatewayAlipay PaymentGateway = "alipay"
)

type PaymentOrder struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	OrderNumber     string         `json:"order_number" gorm:"size:32;uniqueIndex;not null"`
	UserID          uint           `json:"user_id" gorm:"not null;index"`
	BillID          *uint          `json:"bill_id,omitempty" gorm:"index"`
	MerchantOrderID *uint          `json:"merchant_order_id,omitempty" gorm:"index"`
	AmountCents     int64          `json:"amount_cents" gorm:"not null"`
	Gateway         PaymentGateway `json:"gateway" gorm:"size:16;not null"`
	GatewayOrderNo  string         `json:"gateway_order_no,omitempty" gorm:"size:64"`
	Status          PaymentStatus  `json:"status" gorm:"size:16;not null;index"`
	PaidAt          *time.Time     `json:"paid_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (p PaymentOrder) OwnerID() uint { return p.UserID }

type CreatePaymentRequest struct {
	BillID          *uint          `json:"bill_id"`
	MerchantOrderID *uint          `json:"merchant_order_id"`
	Gateway         PaymentGateway `json:"gateway" binding:"required,oneof=wechat alipay"`
}

type SettlePaymentRequest struct {
	Success        bool   `json:"success"`
	GatewayOrderNo string `json:"gateway_order_no"`
}
