package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	"github.com/ecoride/ecoride/internal/driver/domain"
	"github.com/ecoride/ecoride/internal/driver/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&domain.Driver{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
	return svc, gdb
}

func TestCreateDriver(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateDriverRequest{
		Name:      "Sunil Fernando",
		LicenseNo: "b1234567",
		ContactNo: "+94770001111",
	})
	require.NoError(t, err)
	assert.Equal(t, "B1234567", created.LicenseNo)
	assert.Equal(t, domain.StatusAvailable, created.Status)

	_, err = svc.Create(ctx, domain.CreateDriverRequest{Name: "Other", LicenseNo: "B1234567"})
	assert.ErrorIs(t, err, domain.ErrDuplicateLicense)

	_, err = svc.Create(ctx, domain.CreateDriverRequest{Name: " ", LicenseNo: "B7654321"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(ctx, domain.CreateDriverRequest{Name: "No License"})
	assert.ErrorIs(t, err, domain.ErrInvalidLicense)
}

func TestListDriversByStatus(t *testing.T) {
	svc, gdb := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateDriverRequest{Name: "Driver One", LicenseNo: "B0000001"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateDriverRequest{Name: "Driver Two", LicenseNo: "B0000002"})
	require.NoError(t, err)

	require.NoError(t, gdb.Model(&domain.Driver{}).
		Where("license_no = ?", first.LicenseNo).
		Update("status", domain.StatusOnLeave).Error)

	available, err := svc.List(ctx, domain.ListDriverRequest{Status: "AVAILABLE"})
	require.NoError(t, err)
	assert.Len(t, available, 1)
	assert.Equal(t, "Driver Two", available[0].Name)

	all, err := svc.List(ctx, domain.ListDriverRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSetDriverStatus(t *testing.T) {
	svc, gdb := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateDriverRequest{Name: "Sunil Fernando", LicenseNo: "B1111111"})
	require.NoError(t, err)

	onLeave, err := svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "ON_LEAVE"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOnLeave, onLeave.Status)

	back, err := svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "AVAILABLE"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAvailable, back.Status)

	// ASSIGNED is booking-owned, not an administrative target.
	_, err = svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "ASSIGNED"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	require.NoError(t, gdb.Model(&domain.Driver{}).
		Where("license_no = ?", created.LicenseNo).
		Update("status", domain.StatusAssigned).Error)

	_, err = svc.SetStatus(ctx, domain.SetStatusRequest{ID: created.ID, Status: "ON_LEAVE"})
	assert.ErrorIs(t, err, domain.ErrDriverAssigned)
}
