package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/booking/domain"
	"github.com/ecoride/ecoride/internal/clock"
	customerdomain "github.com/ecoride/ecoride/internal/customer/domain"
	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	invoicedomain "github.com/ecoride/ecoride/internal/invoice/domain"
	"github.com/ecoride/ecoride/internal/invoice/format"
	"github.com/ecoride/ecoride/internal/pricing"
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bookingDateLayout = "2006-01-02"

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Customers customerdomain.Repository
	Vehicles  vehicledomain.Repository
	Drivers   driverdomain.Repository
	RatePlans rateplandomain.Repository
	Invoices  invoicedomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	customers customerdomain.Repository
	vehicles  vehicledomain.Repository
	drivers   driverdomain.Repository
	ratePlans rateplandomain.Repository
	invoices  invoicedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("booking.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		customers: p.Customers,
		vehicles:  p.Vehicles,
		drivers:   p.Drivers,
		ratePlans: p.RatePlans,
		invoices:  p.Invoices,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateBookingRequest) (*domain.Response, error) {
	customerID, err := s.parseID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := s.parseID(req.VehicleID)
	if err != nil {
		return nil, err
	}

	var driverID snowflake.ID
	withDriver := strings.TrimSpace(req.DriverID) != ""
	if withDriver {
		driverID, err = s.parseID(req.DriverID)
		if err != nil {
			return nil, err
		}
	}

	bookingDate, err := time.ParseInLocation(bookingDateLayout, strings.TrimSpace(req.BookingDate), time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidBookingDate
	}
	if req.RentalDays <= 0 {
		return nil, domain.ErrInvalidRentalDays
	}
	if req.EstimatedKm < 0 {
		return nil, domain.ErrInvalidDistance
	}

	now := s.clock.Now()
	if domain.DaysBetween(now, bookingDate) < domain.MinLeadTimeDays {
		return nil, domain.ErrLeadTimeTooShort
	}

	var (
		booking domain.Booking
		invoice invoicedomain.Invoice
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		cust, err := s.customers.FindByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if cust == nil {
			return domain.ErrCustomerNotFound
		}

		vehicle, err := s.vehicles.FindByID(ctx, tx, vehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return vehicledomain.ErrNotFound
		}

		plan, err := s.ratePlans.FindByID(ctx, tx, vehicle.RatePlanID)
		if err != nil {
			return err
		}
		if plan == nil {
			return rateplandomain.ErrPlanNotFound
		}

		if withDriver {
			drv, err := s.drivers.FindByID(ctx, tx, driverID)
			if err != nil {
				return err
			}
			if drv == nil {
				return driverdomain.ErrNotFound
			}
		}

		// Guarded status flips double as the availability check.
		ok, err := s.vehicles.UpdateStatusIf(ctx, tx, vehicleID,
			vehicledomain.StatusAvailable, vehicledomain.StatusReserved, now)
		if err != nil {
			return err
		}
		if !ok {
			return vehicledomain.ErrVehicleUnavailable
		}

		if withDriver {
			ok, err := s.drivers.UpdateStatusIf(ctx, tx, driverID,
				driverdomain.StatusAvailable, driverdomain.StatusAssigned, now)
			if err != nil {
				return err
			}
			if !ok {
				return driverdomain.ErrDriverUnavailable
			}
		}

		breakdown := pricing.Quote(*plan, req.RentalDays, req.EstimatedKm, withDriver, pricing.DepositCents)

		booking = domain.Booking{
			ID:           s.genID.Generate(),
			CustomerID:   customerID,
			VehicleID:    vehicleID,
			BookingDate:  bookingDate,
			RentalDays:   req.RentalDays,
			EstimatedKm:  req.EstimatedKm,
			DepositCents: pricing.DepositCents,
			Status:       domain.StatusReserved,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if withDriver {
			booking.DriverID = &driverID
		}
		if err := s.repo.Insert(ctx, tx, &booking); err != nil {
			return err
		}

		seq, err := s.invoices.NextSeq(ctx, tx)
		if err != nil {
			return err
		}
		number, err := format.FormatInvoiceNumber(format.DefaultInvoiceNumberTemplate, now, seq)
		if err != nil {
			return err
		}

		invoice = newInvoice(s.genID.Generate(), booking.ID, number, seq, breakdown, now)
		return s.invoices.Insert(ctx, tx, &invoice)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking reserved",
		zap.String("booking_id", booking.ID.String()),
		zap.String("invoice_number", invoice.Number),
		zap.Int64("rental_days", booking.RentalDays),
		zap.Bool("with_driver", booking.DriverID != nil),
	)

	return toResponse(booking, &invoice), nil
}

func (s *Service) Complete(ctx context.Context, req domain.CompleteBookingRequest) (*domain.Response, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return nil, err
	}
	if req.ActualKm < 0 {
		return nil, domain.ErrInvalidDistance
	}

	now := s.clock.Now()

	var (
		booking *domain.Booking
		invoice *invoicedomain.Invoice
	)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		booking, err = s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.ErrNotFound
		}
		if !domain.CanTransition(booking.Status, domain.StatusCompleted) {
			return domain.ErrInvalidBookingState
		}

		if !req.Force && req.ActualKm < booking.EstimatedKm/2 {
			return domain.ErrSuspiciousDistance
		}

		vehicle, err := s.vehicles.FindByID(ctx, tx, booking.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return vehicledomain.ErrNotFound
		}
		plan, err := s.ratePlans.FindByID(ctx, tx, vehicle.RatePlanID)
		if err != nil {
			return err
		}
		if plan == nil {
			return rateplandomain.ErrPlanNotFound
		}

		breakdown := pricing.Quote(*plan, booking.RentalDays, req.ActualKm,
			booking.DriverID != nil, booking.DepositCents)

		invoice, err = s.invoices.FindByBookingID(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return invoicedomain.ErrNotFound
		}
		applyBreakdown(invoice, breakdown, now)
		if err := s.invoices.UpdateAmounts(ctx, tx, invoice); err != nil {
			return err
		}

		booking.ActualKm = req.ActualKm
		booking.Status = domain.StatusCompleted
		booking.UpdatedAt = now
		if err := s.repo.Update(ctx, tx, booking); err != nil {
			return err
		}

		return s.releaseAssets(ctx, tx, booking, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking completed",
		zap.String("booking_id", booking.ID.String()),
		zap.Float64("actual_km", booking.ActualKm),
		zap.Int64("total_cents", invoice.TotalCents),
	)

	return toResponse(*booking, invoice), nil
}

func (s *Service) Cancel(ctx context.Context, req domain.CancelBookingRequest) (*domain.Response, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var booking *domain.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		booking, err = s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.ErrNotFound
		}
		if !domain.CanTransition(booking.Status, domain.StatusCancelled) {
			return domain.ErrInvalidBookingState
		}

		if domain.DaysBetween(now, booking.BookingDate) <= domain.CancellationLockoutDays {
			return domain.ErrCancellationLocked
		}

		booking.Status = domain.StatusCancelled
		booking.UpdatedAt = now
		if err := s.repo.Update(ctx, tx, booking); err != nil {
			return err
		}

		return s.releaseAssets(ctx, tx, booking, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("booking cancelled", zap.String("booking_id", booking.ID.String()))

	return toResponse(*booking, nil), nil
}

func (s *Service) Reprice(ctx context.Context, id string) (*pricing.Breakdown, error) {
	bookingID, err := s.parseID(id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	var breakdown pricing.Breakdown
	err = s.db.Transaction(func(tx *gorm.DB) error {
		booking, err := s.repo.FindByID(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if booking == nil {
			return domain.ErrNotFound
		}
		if booking.Status != domain.StatusReserved {
			return domain.ErrInvalidBookingState
		}

		vehicle, err := s.vehicles.FindByID(ctx, tx, booking.VehicleID)
		if err != nil {
			return err
		}
		if vehicle == nil {
			return vehicledomain.ErrNotFound
		}
		plan, err := s.ratePlans.FindByID(ctx, tx, vehicle.RatePlanID)
		if err != nil {
			return err
		}
		if plan == nil {
			return rateplandomain.ErrPlanNotFound
		}

		breakdown = pricing.Quote(*plan, booking.RentalDays, booking.EstimatedKm,
			booking.DriverID != nil, booking.DepositCents)

		invoice, err := s.invoices.FindByBookingID(ctx, tx, booking.ID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return invoicedomain.ErrNotFound
		}
		applyBreakdown(invoice, breakdown, now)
		return s.invoices.UpdateAmounts(ctx, tx, invoice)
	})
	if err != nil {
		return nil, err
	}

	return &breakdown, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetBookingRequest) (*domain.Response, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.ErrNotFound
	}

	invoice, err := s.invoices.FindByBookingID(ctx, s.db, booking.ID)
	if err != nil {
		return nil, err
	}

	return toResponse(*booking, invoice), nil
}

func (s *Service) List(ctx context.Context, req domain.ListBookingRequest) ([]domain.Response, error) {
	var filter domain.ListBookingFilter
	if v := strings.TrimSpace(req.Status); v != "" {
		status := domain.Status(strings.ToUpper(v))
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = status
	}
	if v := strings.TrimSpace(req.CustomerID); v != "" {
		customerID, err := s.parseID(v)
		if err != nil {
			return nil, err
		}
		filter.CustomerID = customerID
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, *toResponse(item, nil))
	}
	return resp, nil
}

// releaseAssets returns the booking's vehicle and driver to the pool when a
// reservation ends, whatever the reason.
func (s *Service) releaseAssets(ctx context.Context, tx *gorm.DB, booking *domain.Booking, now time.Time) error {
	if _, err := s.vehicles.UpdateStatusIf(ctx, tx, booking.VehicleID,
		vehicledomain.StatusReserved, vehicledomain.StatusAvailable, now); err != nil {
		return err
	}
	if booking.DriverID != nil {
		if _, err := s.drivers.UpdateStatusIf(ctx, tx, *booking.DriverID,
			driverdomain.StatusAssigned, driverdomain.StatusAvailable, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func newInvoice(id, bookingID snowflake.ID, number string, seq int64, b pricing.Breakdown, now time.Time) invoicedomain.Invoice {
	return invoicedomain.Invoice{
		ID:             id,
		BookingID:      bookingID,
		Number:         number,
		Seq:            seq,
		BaseCents:      b.BaseCents,
		OverageCents:   b.OverageCents,
		DiscountCents:  b.DiscountCents,
		DriverFeeCents: b.DriverFeeCents,
		TaxCents:       b.TaxCents,
		DepositCents:   b.DepositCents,
		TotalCents:     b.TotalCents,
		IssuedAt:       now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func applyBreakdown(invoice *invoicedomain.Invoice, b pricing.Breakdown, now time.Time) {
	invoice.BaseCents = b.BaseCents
	invoice.OverageCents = b.OverageCents
	invoice.DiscountCents = b.DiscountCents
	invoice.DriverFeeCents = b.DriverFeeCents
	invoice.TaxCents = b.TaxCents
	invoice.DepositCents = b.DepositCents
	invoice.TotalCents = b.TotalCents
	invoice.UpdatedAt = now
}

func toResponse(b domain.Booking, invoice *invoicedomain.Invoice) *domain.Response {
	resp := &domain.Response{
		ID:          b.ID.String(),
		CustomerID:  b.CustomerID.String(),
		VehicleID:   b.VehicleID.String(),
		BookingDate: b.BookingDate.Format(bookingDateLayout),
		RentalDays:  b.RentalDays,
		EstimatedKm: b.EstimatedKm,
		ActualKm:    b.ActualKm,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
	if b.DriverID != nil {
		resp.DriverID = b.DriverID.String()
	}
	if invoice != nil {
		resp.Invoice = &invoicedomain.Response{
			ID:             invoice.ID.String(),
			BookingID:      invoice.BookingID.String(),
			Number:         invoice.Number,
			BaseCents:      invoice.BaseCents,
			OverageCents:   invoice.OverageCents,
			DiscountCents:  invoice.DiscountCents,
			DriverFeeCents: invoice.DriverFeeCents,
			TaxCents:       invoice.TaxCents,
			DepositCents:   invoice.DepositCents,
			TotalCents:     invoice.TotalCents,
			IssuedAt:       invoice.IssuedAt.Format(time.RFC3339),
			UpdatedAt:      invoice.UpdatedAt.Format(time.RFC3339),
		}
	}
	return resp
}
