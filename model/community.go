package model

import "time"

type Community struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Address          string    `json:"address" gorm:"size:255;not null"`
	PropertyPhone    string    `json:"property_phone" gorm:"size:20"`
	FeeStandardCents int64     `json:"fee_standard_cents" gorm:"not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Building struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CommunityID uint      `json:"community_id" gorm:"not null;uniqueIndex:idx_building_community_name"`
	Name        string    `json:"name" gorm:"size:50;not null;uniqueIndex:idx_building_community_name"`
	UnitCount   int       `json:"unit_count" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type House struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BuildingID uint      `json:"building_id" gorm:"not null;uniqueIndex:idx_house_location"`
	Unit       string    `json:"unit" gorm:"size:10;not null;uniqueIndex:idx_house_location"`
	Number     string    `json:"number" gorm:"size:10;not null;uniqueIndex:idx_house_location"`
	Area       float64   `json:"area" gorm:"not null"`
	OwnerName  string    `json:"owner_name" gorm:"size:50"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CommunityStatistics struct {
	CommunityID    uint  `json:"community_id"`
	BuildingsCount int64 `json:"buildings_count"`
	HousesCount    int64 `json:"houses_count"`
}

type BuildingStatistics struct {
	BuildingID  uint    `json:"building_id"`
	HousesCount int64   `json:"houses_count"`
	TotalArea   float64 `json:"total_area"`
}
