package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/clock"
	"github.com/ecoride/ecoride/internal/customer/domain"
	"github.com/ecoride/ecoride/internal/customer/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupService(t *testing.T) domain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Customer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		Repo:  repository.Provide(),
	})
}

func TestCreateCustomer(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Kind:       "local",
		Name:       "Nimal Perera",
		IdentityNo: "902541234V",
		Phone:      "+94771234567",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindLocal, created.Kind)
	assert.Equal(t, "Nimal Perera", created.Name)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "902541234V", got.IdentityNo)
}

func TestCreateCustomerValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     domain.CreateCustomerRequest
		wantErr error
	}{
		{"unknown kind", domain.CreateCustomerRequest{Kind: "ALIEN", Name: "X", IdentityNo: "1"}, domain.ErrInvalidKind},
		{"missing name", domain.CreateCustomerRequest{Kind: "FOREIGN", Name: "  ", IdentityNo: "P123"}, domain.ErrInvalidName},
		{"missing identity", domain.CreateCustomerRequest{Kind: "LOCAL", Name: "X", IdentityNo: ""}, domain.ErrInvalidIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateCustomerDuplicateIdentity(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	req := domain.CreateCustomerRequest{Kind: "FOREIGN", Name: "Jane Doe", IdentityNo: "N1234567"}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Same passport number under a different kind is a distinct identity.
	_, err = svc.Create(ctx, domain.CreateCustomerRequest{Kind: "LOCAL", Name: "Jane Doe", IdentityNo: "N1234567"})
	assert.NoError(t, err)
}

func TestUpdateCustomer(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Kind:       "LOCAL",
		Name:       "Kumari Silva",
		IdentityNo: "857001234V",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateCustomerRequest{
		ID:    created.ID,
		Phone: "+94712223344",
		Email: "kumari@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Kumari Silva", updated.Name)
	assert.Equal(t, "+94712223344", updated.Phone)
	assert.Equal(t, "kumari@example.com", updated.Email)

	_, err = svc.Update(ctx, domain.UpdateCustomerRequest{ID: "999999999999999999", Name: "Nobody"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomersFilterByKind(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for i, req := range []domain.CreateCustomerRequest{
		{Kind: "LOCAL", Name: "Local One", IdentityNo: "900000001V"},
		{Kind: "LOCAL", Name: "Local Two", IdentityNo: "900000002V"},
		{Kind: "FOREIGN", Name: "Visitor", IdentityNo: "P7654321"},
	} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err, "create %d", i)
	}

	all, err := svc.List(ctx, domain.ListCustomerRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	locals, err := svc.List(ctx, domain.ListCustomerRequest{Kind: "LOCAL"})
	require.NoError(t, err)
	assert.Len(t, locals, 2)

	_, err = svc.List(ctx, domain.ListCustomerRequest{Kind: "MARTIAN"})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestGetCustomerInvalidID(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetByID(context.Background(), domain.GetCustomerRequest{ID: "not-a-snowflake"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
