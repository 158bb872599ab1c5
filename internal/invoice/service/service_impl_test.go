package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	bookingrepo "github.com/ecoride/ecoride/internal/booking/repository"
	customerrepo "github.com/ecoride/ecoride/internal/customer/repository"
	driverrepo "github.com/ecoride/ecoride/internal/driver/repository"
	"github.com/ecoride/ecoride/internal/invoice/domain"
	"github.com/ecoride/ecoride/internal/invoice/repository"
	"github.com/ecoride/ecoride/internal/providers/pdf"
	vehiclerepo "github.com/ecoride/ecoride/internal/vehicle/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Invoice{}, &bookingdomain.Booking{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:        gdb,
		Log:       zap.NewNop(),
		Repo:      repository.Provide(),
		Bookings:  bookingrepo.Provide(),
		Customers: customerrepo.Provide(),
		Vehicles:  vehiclerepo.Provide(),
		Drivers:   driverrepo.Provide(),
		PDF:       &pdf.NoOpProvider{},
	})
	return svc, gdb, node
}

func TestGetByBookingID(t *testing.T) {
	svc, gdb, node := setupService(t)
	ctx := context.Background()

	bookingID := node.Generate()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	invoice := domain.Invoice{
		ID:         node.Generate(),
		BookingID:  bookingID,
		Number:     "INV-0001",
		Seq:        1,
		BaseCents:  2_500_000,
		TaxCents:   250_000,
		TotalCents: 2_250_000,
		IssuedAt:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, gdb.Create(&invoice).Error)

	got, err := svc.GetByBookingID(ctx, bookingID.String())
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", got.Number)
	assert.Equal(t, int64(2_250_000), got.TotalCents)

	_, err = svc.GetByBookingID(ctx, node.Generate().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByBookingID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidBookingID)
}

func TestFormatLKR(t *testing.T) {
	assert.Equal(t, "LKR 25000.00", formatLKR(2_500_000))
	assert.Equal(t, "LKR 0.05", formatLKR(5))
	assert.Equal(t, "-LKR 5000.00", formatLKR(-500_000))
}

func TestInvoiceItemsSkipZeroLines(t *testing.T) {
	items := invoiceItems(&domain.Invoice{
		BaseCents:    2_500_000,
		TaxCents:     250_000,
		DepositCents: 500_000,
	})

	require.Len(t, items, 3)
	assert.Equal(t, "Rental charge", items[0].Description)
	assert.Equal(t, "Tax", items[1].Description)
	assert.Equal(t, "Deposit held", items[2].Description)
	assert.Equal(t, "-LKR 5000.00", items[2].Amount)
}
