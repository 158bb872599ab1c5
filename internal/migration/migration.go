package migration

import (
	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	customerdomain "github.com/ecoride/ecoride/internal/customer/domain"
	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	invoicedomain "github.com/ecoride/ecoride/internal/invoice/domain"
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"gorm.io/gorm"
)

// RunMigrations creates the full schema on startup. The store lives in
// process memory, so every boot starts from an empty database.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&rateplandomain.RatePlan{},
		&customerdomain.Customer{},
		&vehicledomain.Vehicle{},
		&driverdomain.Driver{},
		&bookingdomain.Booking{},
		&invoicedomain.Invoice{},
	)
}
