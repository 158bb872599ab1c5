package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	customerdomain "github.com/ecoride/ecoride/internal/customer/domain"
	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	"github.com/ecoride/ecoride/internal/invoice/domain"
	"github.com/ecoride/ecoride/internal/providers/pdf"
	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	Repo      domain.Repository
	Bookings  bookingdomain.Repository
	Customers customerdomain.Repository
	Vehicles  vehicledomain.Repository
	Drivers   driverdomain.Repository
	PDF       pdf.Provider
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	bookings  bookingdomain.Repository
	customers customerdomain.Repository
	vehicles  vehicledomain.Repository
	drivers   driverdomain.Repository
	pdf       pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("invoice.service"),
		repo:      p.Repo,
		bookings:  p.Bookings,
		customers: p.Customers,
		vehicles:  p.Vehicles,
		drivers:   p.Drivers,
		pdf:       p.PDF,
	}
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*domain.Response, error) {
	id, err := s.parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.repo.FindByBookingID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	return toResponse(invoice), nil
}

func (s *Service) RenderPDF(ctx context.Context, bookingID string) (io.Reader, error) {
	id, err := s.parseBookingID(bookingID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.repo.FindByBookingID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	booking, err := s.bookings.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, bookingdomain.ErrNotFound
	}

	data := pdf.InvoiceData{
		CompanyName:   "EcoRide Rentals",
		InvoiceNumber: invoice.Number,
		IssueDate:     invoice.IssuedAt.Format("2006-01-02"),
		BookingDate:   booking.BookingDate.Format("2006-01-02"),
		RentalPeriod:  fmt.Sprintf("%d day(s)", booking.RentalDays),
		DriverName:    "Self-drive",
		Total:         formatLKR(invoice.TotalCents),
	}

	if booking.Status == bookingdomain.StatusCompleted {
		data.Distance = fmt.Sprintf("%.1f km", booking.ActualKm)
	} else {
		data.Distance = fmt.Sprintf("%.1f km (estimated)", booking.EstimatedKm)
	}

	if cust, err := s.customers.FindByID(ctx, s.db, booking.CustomerID); err != nil {
		return nil, err
	} else if cust != nil {
		data.CustomerName = cust.Name
	}

	if vehicle, err := s.vehicles.FindByID(ctx, s.db, booking.VehicleID); err != nil {
		return nil, err
	} else if vehicle != nil {
		data.VehicleModel = vehicle.Model
		data.VehiclePlate = vehicle.PlateNo
	}

	if booking.DriverID != nil {
		drv, err := s.drivers.FindByID(ctx, s.db, *booking.DriverID)
		if err != nil {
			return nil, err
		}
		if drv != nil {
			data.DriverName = drv.Name
		}
	}

	data.Items = invoiceItems(invoice)

	return s.pdf.GenerateInvoice(ctx, data)
}

func invoiceItems(invoice *domain.Invoice) []pdf.InvoiceItem {
	items := []pdf.InvoiceItem{
		{Description: "Rental charge", Amount: formatLKR(invoice.BaseCents)},
	}
	if invoice.OverageCents > 0 {
		items = append(items, pdf.InvoiceItem{
			Description: "Excess distance", Amount: formatLKR(invoice.OverageCents),
		})
	}
	if invoice.DriverFeeCents > 0 {
		items = append(items, pdf.InvoiceItem{
			Description: "Chauffeur fee", Amount: formatLKR(invoice.DriverFeeCents),
		})
	}
	if invoice.DiscountCents > 0 {
		items = append(items, pdf.InvoiceItem{
			Description: "Long rental discount", Amount: formatLKR(-invoice.DiscountCents),
		})
	}
	items = append(items,
		pdf.InvoiceItem{Description: "Tax", Amount: formatLKR(invoice.TaxCents)},
		pdf.InvoiceItem{Description: "Deposit held", Amount: formatLKR(-invoice.DepositCents)},
	)
	return items
}

func formatLKR(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%sLKR %d.%02d", sign, cents/100, cents%100)
}

func (s *Service) parseBookingID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidBookingID
	}
	return id, nil
}

func toResponse(i *domain.Invoice) *domain.Response {
	return &domain.Response{
		ID:             i.ID.String(),
		BookingID:      i.BookingID.String(),
		Number:         i.Number,
		BaseCents:      i.BaseCents,
		OverageCents:   i.OverageCents,
		DiscountCents:  i.DiscountCents,
		DriverFeeCents: i.DriverFeeCents,
		TaxCents:       i.TaxCents,
		DepositCents:   i.DepositCents,
		TotalCents:     i.TotalCents,
		IssuedAt:       i.IssuedAt.Format(time.RFC3339),
		UpdatedAt:      i.UpdatedAt.Format(time.RFC3339),
	}
}
