package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/ecoride/ecoride/internal/invoice/domain"
	"github.com/ecoride/ecoride/internal/pricing"
)

// MinLeadTimeDays is the earliest a booking may start, counted in whole
// calendar days from the day the booking is made.
const MinLeadTimeDays int64 = 3

// CancellationLockoutDays is how close to the pickup date a booking becomes
// non-cancellable. Strictly more days than this must remain.
const CancellationLockoutDays int64 = 2

type CreateBookingRequest struct {
	CustomerID  string  `json:"customer_id"`
	VehicleID   string  `json:"vehicle_id"`
	DriverID    string  `json:"driver_id,omitempty"`
	BookingDate string  `json:"booking_date"`
	RentalDays  int64   `json:"rental_days"`
	EstimatedKm float64 `json:"estimated_km"`
}

type CompleteBookingRequest struct {
	ID       string  `json:"-"`
	ActualKm float64 `json:"actual_km"`
	// Force acknowledges a reported distance far below the estimate.
	Force bool `json:"force,omitempty"`
}

type CancelBookingRequest struct {
	ID string `json:"-"`
}

type GetBookingRequest struct {
	ID string
}

type ListBookingRequest struct {
	Status     string
	CustomerID string
}

type Response struct {
	ID          string                  `json:"id"`
	CustomerID  string                  `json:"customer_id"`
	VehicleID   string                  `json:"vehicle_id"`
	DriverID    string                  `json:"driver_id,omitempty"`
	BookingDate string                  `json:"booking_date"`
	RentalDays  int64                   `json:"rental_days"`
	EstimatedKm float64                 `json:"estimated_km"`
	ActualKm    float64                 `json:"actual_km"`
	Status      Status                  `json:"status"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
	Invoice     *invoicedomain.Response `json:"invoice,omitempty"`
}

type Service interface {
	Create(context.Context, CreateBookingRequest) (*Response, error)
	Complete(context.Context, CompleteBookingRequest) (*Response, error)
	Cancel(context.Context, CancelBookingRequest) (*Response, error)
	// Reprice recomputes the reserved booking's breakdown from the current
	// estimate without touching status. Read-modify on the invoice only.
	Reprice(ctx context.Context, id string) (*pricing.Breakdown, error)
	GetByID(context.Context, GetBookingRequest) (*Response, error)
	List(context.Context, ListBookingRequest) ([]Response, error)
}

var (
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("booking_not_found")
	ErrCustomerNotFound    = errors.New("customer_not_found")
	ErrInvalidBookingDate  = errors.New("invalid_booking_date")
	ErrInvalidRentalDays   = errors.New("invalid_rental_days")
	ErrInvalidDistance     = errors.New("invalid_distance")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrLeadTimeTooShort    = errors.New("lead_time_too_short")
	ErrInvalidBookingState = errors.New("invalid_booking_state")
	ErrCancellationLocked  = errors.New("cancellation_locked")
	ErrSuspiciousDistance  = errors.New("suspicious_distance")
)
