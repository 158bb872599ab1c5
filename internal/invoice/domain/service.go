package domain

import (
	"context"
	"errors"
	"io"
)

type Response struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	Number         string `json:"number"`
	BaseCents      int64  `json:"base_cents"`
	OverageCents   int64  `json:"overage_cents"`
	DiscountCents  int64  `json:"discount_cents"`
	DriverFeeCents int64  `json:"driver_fee_cents"`
	TaxCents       int64  `json:"tax_cents"`
	DepositCents   int64  `json:"deposit_cents"`
	TotalCents     int64  `json:"total_cents"`
	IssuedAt       string `json:"issued_at"`
	UpdatedAt      string `json:"updated_at"`
}

type Service interface {
	GetByBookingID(ctx context.Context, bookingID string) (*Response, error)
	// RenderPDF produces the printable statement for a booking's invoice.
	RenderPDF(ctx context.Context, bookingID string) (io.Reader, error)
}

var (
	ErrInvalidBookingID = errors.New("invalid_booking_id")
	ErrNotFound         = errors.New("invoice_not_found")
)
