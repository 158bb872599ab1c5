package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	rateplandomain "github.com/ecoride/ecoride/internal/rateplan/domain"
	"github.com/ecoride/ecoride/internal/vehicle/domain"
	"github.com/ecoride/ecoride/internal/vehicle/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ratePlanStub struct {
	plans map[string]rateplandomain.Response
}

func (s *ratePlanStub) SyncCatalog(ctx context.Context) error { return nil }

func (s *ratePlanStub) List(ctx context.Context) ([]rateplandomain.Response, error) {
	out := make([]rateplandomain.Response, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, p)
	}
	return out, nil
}

func (s *ratePlanStub) GetByCode(ctx context.Context, code string) (*rateplandomain.Response, error) {
	p, ok := s.plans[code]
	if !ok {
		return nil, rateplandomain.ErrPlanNotFound
	}
	return &p, nil
}

func (s *ratePlanStub) GetByID(ctx context.Context, id string) (*rateplandomain.Response, error) {
	for _, p := range s.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, rateplandomain.ErrPlanNotFound
}

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Vehicle{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	plans := &ratePlanStub{plans: map[string]rateplandomain.Response{
		"compact-petrol": {
			ID:            node.Generate().String(),
			Code:          "compact-petrol",
			Name:          "Compact Petrol",
			DailyFeeCents: 500_000,
			FreeKmPerDay:  100,
		},
	}}

	svc := New(Params{
		DB:       gdb,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		Repo:     repository.Provide(),
		RatePlan: plans,
	})
	return svc, gdb
}

func TestCreateVehicle(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateVehicleRequest{
		PlateNo:      "cab-1234",
		Model:        "Toyota Aqua",
		RatePlanCode: "compact-petrol",
	})
	require.NoError(t, err)
	assert.Equal(t, "CAB-1234", created.PlateNo)
	assert.Equal(t, domain.StatusAvailable, created.Status)
	assert.Equal(t, "compact-petrol", created.RatePlanCode)

	_, err = svc.Create(ctx, domain.CreateVehicleRequest{
		PlateNo:      "CAB-1234",
		Model:        "Toyota Aqua",
		RatePlanCode: "compact-petrol",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatePlate)

	_, err = svc.Create(ctx, domain.CreateVehicleRequest{
		PlateNo:      "CAB-9999",
		Model:        "Nissan Leaf",
		RatePlanCode: "no-such-plan",
	})
	assert.ErrorIs(t, err, rateplandomain.ErrPlanNotFound)
}

func TestListVehiclesByStatus(t *testing.T) {
	svc, gdb := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateVehicleRequest{
		PlateNo: "CAB-0001", Model: "Toyota Aqua", RatePlanCode: "compact-petrol",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateVehicleRequest{
		PlateNo: "CAB-0002", Model: "Toyota Aqua", RatePlanCode: "compact-petrol",
	})
	require.NoError(t, err)

	// Park the first vehicle in the workshop.
	require.NoError(t, gdb.Model(&domain.Vehicle{}).
		Where("plate_no = ?", first.PlateNo).
		Update("status", domain.StatusUnderMaintenance).Error)

	available, err := svc.List(ctx, domain.ListVehicleRequest{Status: "AVAILABLE"})
	require.NoError(t, err)
	assert.Len(t, available, 1)
	assert.Equal(t, "CAB-0002", available[0].PlateNo)

	all, err := svc.List(ctx, domain.ListVehicleRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List(ctx, domain.ListVehicleRequest{Status: "FLYING"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestSetVehicleStatus(t *testing.T) {
	svc, gdb := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateVehicleRequest{
		PlateNo: "CAB-0100", Model: "BMW X5", RatePlanCode: "compact-petrol",
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "UNDER_MAINTENANCE"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnderMaintenance, updated.Status)

	back, err := svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "available"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, back.Status)

	// RESERVED is not a valid administrative target.
	_, err = svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "RESERVED"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	// A vehicle on an active booking cannot be overridden.
	require.NoError(t, gdb.Model(&domain.Vehicle{}).
		Where("plate_no = ?", created.PlateNo).
		Update("status", domain.StatusReserved).Error)

	_, err = svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "UNDER_MAINTENANCE"})
	assert.ErrorIs(t, err, domain.ErrVehicleReserved)
}
