package seed

import (
	"context"
	"fmt"

	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	"github.com/ecoride/ecoride/internal/clock"
	"github.com/ecoride/ecoride/internal/config"
	customerdomain "github.com/ecoride/ecoride/internal/customer/domain"
	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const demoBookingLeadDays = 5

type Params struct {
	fx.In

	Cfg       config.Config
	DB        *gorm.DB
	Log       *zap.Logger
	Clock     clock.Clock
	Customers customerdomain.Service
	Vehicles  vehicledomain.Service
	Drivers   driverdomain.Service
	Bookings  bookingdomain.Service
}

// Run populates a demo customer, vehicle, driver and one reserved booking so
// the API is explorable right after boot. Skipped when data already exists.
func Run(p Params) error {
	if !p.Cfg.SeedDemo {
		return nil
	}

	var count int64
	if err := p.DB.Model(&customerdomain.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ctx := context.Background()

	customer, err := p.Customers.Create(ctx, customerdomain.CreateCustomerRequest{
		Kind:       "LOCAL",
		Name:       "Nimal Perera",
		IdentityNo: "902541234V",
		LicenseNo:  "B9025412",
		Phone:      "+94771234567",
		Email:      "nimal@example.com",
	})
	if err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	vehicle, err := p.Vehicles.Create(ctx, vehicledomain.CreateVehicleRequest{
		PlateNo:      "CAB-1234",
		Model:        "Toyota Aqua",
		RatePlanCode: "compact-petrol",
	})
	if err != nil {
		return fmt.Errorf("seed vehicle: %w", err)
	}

	driver, err := p.Drivers.Create(ctx, driverdomain.CreateDriverRequest{
		Name:      "Sunil Fernando",
		LicenseNo: "B1234567",
		ContactNo: "+94770001111",
	})
	if err != nil {
		return fmt.Errorf("seed driver: %w", err)
	}

	bookingDate := p.Clock.Now().AddDate(0, 0, demoBookingLeadDays).Format("2006-01-02")
	booking, err := p.Bookings.Create(ctx, bookingdomain.CreateBookingRequest{
		CustomerID:  customer.ID,
		VehicleID:   vehicle.ID,
		DriverID:    driver.ID,
		BookingDate: bookingDate,
		RentalDays:  3,
		EstimatedKm: 250,
	})
	if err != nil {
		return fmt.Errorf("seed booking: %w", err)
	}

	p.Log.Info("demo data seeded",
		zap.String("customer_id", customer.ID),
		zap.String("vehicle_id", vehicle.ID),
		zap.String("driver_id", driver.ID),
		zap.String("booking_id", booking.ID),
	)

	return nil
}

var Module = fx.Module("seed",
	fx.Invoke(Run),
)
