// Package domain contains persistence models for rental invoicing.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Invoice is the priced statement of one booking. Exactly one invoice exists
// per booking; completing or repricing the booking rewrites the amounts in
// place, the number never changes.
type Invoice struct {
	ID             snowflake.ID `gorm:"primaryKey"`
	BookingID      snowflake.ID `gorm:"not null;uniqueIndex"`
	Number         string       `gorm:"type:text;not null;uniqueIndex"`
	Seq            int64        `gorm:"not null"`
	BaseCents      int64        `gorm:"not null;default:0"`
	OverageCents   int64        `gorm:"not null;default:0"`
	DiscountCents  int64        `gorm:"not null;default:0"`
	DriverFeeCents int64        `gorm:"not null;default:0"`
	TaxCents       int64        `gorm:"not null;default:0"`
	DepositCents   int64        `gorm:"not null;default:0"`
	TotalCents     int64        `gorm:"not null;default:0"`
	IssuedAt       time.Time    `gorm:"not null"`
	CreatedAt      time.Time    `gorm:"not null"`
	UpdatedAt      time.Time    `gorm:"not null"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
