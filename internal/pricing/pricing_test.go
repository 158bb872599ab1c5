package pricing

import (
	"testing"

	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	"github.com/stretchr/testify/assert"
)

var compactPetrol = rateplandomain.RatePlan{
	Code:            "compact-petrol",
	Name:            "Compact Petrol",
	DailyFeeCents:   500_000,
	FreeKmPerDay:    100,
	OverageFeeCents: 5_000,
	TaxRatePercent:  10,
}

func TestQuote_WorkedExample(t *testing.T) {
	// 5 days, 800 km, no driver: 300 km over the 500 km allowance.
	b := Quote(compactPetrol, 5, 800, false, DepositCents)

	assert.Equal(t, int64(2_500_000), b.BaseCents)
	assert.Equal(t, int64(1_500_000), b.OverageCents)
	assert.Equal(t, int64(0), b.DiscountCents)
	assert.Equal(t, int64(0), b.DriverFeeCents)
	assert.Equal(t, int64(400_000), b.TaxCents)
	assert.Equal(t, int64(3_900_000), b.TotalCents)
}

func TestQuote_LongRentalDiscount(t *testing.T) {
	// 7 days triggers the discount; allowance grows to 700 km.
	b := Quote(compactPetrol, 7, 800, false, DepositCents)

	assert.Equal(t, int64(3_500_000), b.BaseCents)
	assert.Equal(t, int64(350_000), b.DiscountCents)
	assert.Equal(t, int64(500_000), b.OverageCents)

	// Discount is subtracted before tax.
	taxable := b.BaseCents - b.DiscountCents + b.OverageCents + b.DriverFeeCents
	assert.Equal(t, taxable*compactPetrol.TaxRatePercent/100, b.TaxCents)
	assert.Equal(t, taxable+b.TaxCents-b.DepositCents, b.TotalCents)
}

func TestQuote_DiscountBoundary(t *testing.T) {
	short := Quote(compactPetrol, 6, 0, false, 0)
	assert.Equal(t, int64(0), short.DiscountCents)

	long := Quote(compactPetrol, 7, 0, false, 0)
	assert.Equal(t, long.BaseCents/10, long.DiscountCents)
}

func TestQuote_OverageZeroWithinAllowance(t *testing.T) {
	tests := []struct {
		name string
		days int64
		km   float64
	}{
		{"no distance", 3, 0},
		{"below allowance", 5, 499},
		{"exactly at allowance", 5, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Quote(compactPetrol, tt.days, tt.km, false, 0)
			assert.Equal(t, int64(0), b.OverageCents)
		})
	}
}

func TestQuote_DriverFee(t *testing.T) {
	without := Quote(compactPetrol, 5, 800, false, DepositCents)
	with := Quote(compactPetrol, 5, 800, true, DepositCents)

	assert.Equal(t, int64(0), without.DriverFeeCents)
	assert.Equal(t, 5*DriverDailyFeeCents, with.DriverFeeCents)

	// Discount never touches the driver fee.
	week := Quote(compactPetrol, 7, 0, true, 0)
	assert.Equal(t, week.BaseCents/10, week.DiscountCents)
	assert.Equal(t, 7*DriverDailyFeeCents, week.DriverFeeCents)
}

func TestQuote_BreakdownIdentity(t *testing.T) {
	plans := []rateplandomain.RatePlan{
		compactPetrol,
		{Code: "hybrid-midsize", DailyFeeCents: 750_000, FreeKmPerDay: 150, OverageFeeCents: 6_000, TaxRatePercent: 12},
		{Code: "electric-premium", DailyFeeCents: 1_000_000, FreeKmPerDay: 200, OverageFeeCents: 4_000, TaxRatePercent: 8},
		{Code: "luxury-suv", DailyFeeCents: 1_500_000, FreeKmPerDay: 250, OverageFeeCents: 7_500, TaxRatePercent: 15},
	}

	for _, plan := range plans {
		for _, days := range []int64{1, 3, 6, 7, 14, 30} {
			for _, km := range []float64{0, 120, 500, 800, 2500} {
				for _, withDriver := range []bool{false, true} {
					b := Quote(plan, days, km, withDriver, DepositCents)
					sum := b.BaseCents - b.DiscountCents + b.OverageCents + b.DriverFeeCents + b.TaxCents - b.DepositCents
					assert.Equal(t, sum, b.TotalCents, "plan=%s days=%d km=%v driver=%v", plan.Code, days, km, withDriver)
				}
			}
		}
	}
}

func TestQuote_NegativeTotalIsRefund(t *testing.T) {
	// A promotional plan priced below the deposit yields a refund.
	promo := rateplandomain.RatePlan{Code: "promo", DailyFeeCents: 200_000, FreeKmPerDay: 100, OverageFeeCents: 5_000, TaxRatePercent: 10}
	b := Quote(promo, 1, 0, false, DepositCents)
	assert.Negative(t, b.TotalCents)
	assert.Equal(t, int64(-280_000), b.TotalCents)
}
