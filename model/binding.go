package model

import "time"

type BindingStatus string

const (
	BindingPending  BindingStatus = "pending"
	BindingApproved BindingStatus = "approved"
	BindingRejected BindingStatus = "rejected"
)

type BindingRelationship string

const (
	RelationshipOwner  BindingRelationship = "owner"
	RelationshipFamily BindingRelationship = "family"
)

// UserHouse binds a user to a house. At most one row exists per
// (user_id, house_id) pair regardless of status.
type UserHouse struct {
	ID               uint                `json:"id" gorm:"primaryKey"`
	UserID           uint                `json:"user_id" gorm:"not null;uniqueIndex:idx_user_house"`
	HouseID          uint                `json:"house_id" gorm:"not null;uniqueIndex:idx_user_house"`
	Relationship     BindingRelationship `json:"relationship" gorm:"size:16;not null"`
	Status           BindingStatus       `json:"status" gorm:"size:16;not null;index"`
	CertificateImage string              `json:"certificate_image,omitempty" gorm:"size:255"`
	ApproverID       *uint               `json:"approver_id,omitempty"`
	ApprovedAt       *time.Time          `json:"approved_at,omitempty"`
	RejectReason     string              `json:"reject_reason,omitempty" gorm:"size:255"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func (b UserHouse) OwnerID() uint { return b.UserID }

type BindingFilter struct {
	UserID  *uint
	HouseID *uint
	Status  BindingStatus
}

type CreateBindingRequest struct {
	HouseID          uint                `json:"house_id" binding:"required"`
	Relationship     BindingRelationship `json:"relationship" binding:"required,oneof=owner family"`
	CertificateImage string              `json:"certificate_image"`
}

// DecisionRequest carries the optional reason of an approve/reject call.
type DecisionRequest struct {
	Reason string `json:"reason"`
}
