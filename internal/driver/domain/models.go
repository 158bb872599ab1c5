package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAssigned  Status = "ASSIGNED"
	StatusOnLeave   Status = "ON_LEAVE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAssigned, StatusOnLeave:
		return true
	}
	return false
}

// Driver is a chauffeur on the company roster. ASSIGNED means attached to an
// active booking.
type Driver struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	LicenseNo string       `gorm:"not null;uniqueIndex" json:"license_no"`
	ContactNo string       `json:"contact_no,omitempty"`
	Status    Status       `gorm:"not null" json:"status"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}
