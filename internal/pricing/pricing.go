// Package pricing computes the monetary breakdown for a rental. It is a pure
// calculation layer: inputs are validated by callers and no state is touched.
package pricing

import (
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
)

const (
	// DriverDailyFeeCents is charged per rental day when a chauffeur is
	// included. Flat across all rate plans.
	DriverDailyFeeCents int64 = 250_000

	// DepositCents is the fixed refundable deposit collected at booking time
	// and deducted from the final payable amount.
	DepositCents int64 = 500_000

	// DiscountThresholdDays is the rental length at which the long-rental
	// discount starts to apply.
	DiscountThresholdDays int64 = 7

	// DiscountPercent is applied to the base charge only, never to overage
	// or driver fees.
	DiscountPercent int64 = 10
)

// Breakdown is the itemized result of pricing one rental. All amounts are in
// cents. TotalCents may be negative when the deposit exceeds the net charge;
// the caller surfaces that as a refund, not an error.
type Breakdown struct {
	BaseCents      int64 `json:"base_cents"`
	OverageCents   int64 `json:"overage_cents"`
	DiscountCents  int64 `json:"discount_cents"`
	DriverFeeCents int64 `json:"driver_fee_cents"`
	TaxCents       int64 `json:"tax_cents"`
	DepositCents   int64 `json:"deposit_cents"`
	TotalCents     int64 `json:"total_cents"`
}

// Quote prices a rental of rentalDays against plan, covering distanceKm.
//
// The formula is fixed and auditable:
//
//	base      = dailyFee x days
//	overage   = max(0, km - freeKmPerDay x days) x overageFee
//	driverFee = withDriver ? DriverDailyFeeCents x days : 0
//	discount  = days >= 7 ? 10% of base : 0
//	tax       = taxRate% of (base - discount + overage + driverFee)
//	total     = taxable + tax - deposit
func Quote(plan rateplandomain.RatePlan, rentalDays int64, distanceKm float64, withDriver bool, depositCents int64) Breakdown {
	base := plan.DailyFeeCents * rentalDays
	overage := plan.OverageCharge(distanceKm, rentalDays)

	var driverFee int64
	if withDriver {
		driverFee = DriverDailyFeeCents * rentalDays
	}

	var discount int64
	if rentalDays >= DiscountThresholdDays {
		discount = base * DiscountPercent / 100
	}

	taxable := base - discount + overage + driverFee
	tax := plan.TaxOn(taxable)

	return Breakdown{
		BaseCents:      base,
		OverageCents:   overage,
		DiscountCents:  discount,
		DriverFeeCents: driverFee,
		TaxCents:       tax,
		DepositCents:   depositCents,
		TotalCents:     taxable + tax - depositCents,
	}
}
