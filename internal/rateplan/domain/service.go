package domain

import (
	"context"
	"errors"
)

type Service interface {
	// SyncCatalog loads the configured catalog into the store. Runs once on
	// startup before any booking can reference a plan.
	SyncCatalog(ctx context.Context) error
	List(ctx context.Context) ([]Response, error)
	GetByCode(ctx context.Context, code string) (*Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
}

type Response struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	DailyFeeCents   int64  `json:"daily_fee_cents"`
	FreeKmPerDay    int64  `json:"free_km_per_day"`
	OverageFeeCents int64  `json:"overage_fee_cents"`
	TaxRatePercent  int64  `json:"tax_rate_percent"`
}

var (
	ErrInvalidCode  = errors.New("invalid_code")
	ErrInvalidID    = errors.New("invalid_id")
	ErrPlanNotFound = errors.New("plan_not_found")
)
