package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusAvailable        Status = "AVAILABLE"
	StatusReserved         Status = "RESERVED"
	StatusUnderMaintenance Status = "UNDER_MAINTENANCE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusUnderMaintenance:
		return true
	}
	return false
}

// Vehicle is one unit of the fleet. RatePlanID ties it to the pricing tier
// every booking of this vehicle is charged under.
type Vehicle struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	PlateNo    string       `gorm:"not null;uniqueIndex" json:"plate_no"`
	Model      string       `gorm:"not null" json:"model"`
	RatePlanID snowflake.ID `gorm:"not null;index" json:"rate_plan_id"`
	Status     Status       `gorm:"not null" json:"status"`
	CreatedAt  time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
