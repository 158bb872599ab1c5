// Package domain contains the rate plan catalog model.
package domain

import (
	"math"
	"time"

	"github.com/bwmarrin/snowflake"
)

// RatePlan is one pricing tier of the rental catalog. Monetary fields are in
// cents; TaxRatePercent is a whole percentage between 0 and 100. Plans are
// immutable once loaded: bookings reference them, they never diverge.
type RatePlan struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	Code            string       `gorm:"type:text;not null;uniqueIndex"`
	Name            string       `gorm:"type:text;not null"`
	DailyFeeCents   int64        `gorm:"not null"`
	FreeKmPerDay    int64        `gorm:"not null"`
	OverageFeeCents int64        `gorm:"not null"`
	TaxRatePercent  int64        `gorm:"not null"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (RatePlan) TableName() string { return "rate_plans" }

// OverageCharge returns the charge for distance beyond the plan's free
// allowance over the rental duration. Zero when the allowance covers the
// whole distance.
func (p RatePlan) OverageCharge(totalKm float64, days int64) int64 {
	allowed := float64(p.FreeKmPerDay * days)
	if totalKm <= allowed {
		return 0
	}
	return int64(math.Round((totalKm - allowed) * float64(p.OverageFeeCents)))
}

// TaxOn returns the tax due on a taxable amount under this plan's rate.
func (p RatePlan) TaxOn(taxableCents int64) int64 {
	return taxableCents * p.TaxRatePercent / 100
}
