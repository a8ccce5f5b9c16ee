package model

import "time"

// Values stored in roles.role_type.
const (
	RoleTypeResident      = "resident"
	RoleTypePropertyStaff = "property_staff"
	RoleTypeMerchant      = "merchant"
)

type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:64;uniqueIndex;not null"`
	RoleType  string    `json:"role_type" gorm:"size:32;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// User holds a plain role reference rather than an association so that a
// dangling role id can never break loading the user.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	Name         string    `json:"name" gorm:"size:64"`
	Phone        string    `json:"phone,omitempty" gorm:"size:20"`
	IsSuperuser  bool      `json:"is_superuser" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"not null"`
	RoleID       *uint     `json:"role_id,omitempty" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *User     `json:"user"`
}

type AssignRoleRequest struct {
	RoleType string `json:"role_type" binding:"required,oneof=resident property_staff merchant none"`
}

// Profile is the current user together with the role resolved for this request.
type Profile struct {
	User  *User     `json:"user"`
	Actor *Actor    `json:"actor"`
	Role  ActorRole `json:"role"`
}
