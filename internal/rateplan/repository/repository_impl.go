package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/rateplan/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, plan *domain.RatePlan) error {
	existing, err := r.FindByCode(ctx, db, plan.Code)
	if err != nil {
		return err
	}
	if existing == nil {
		return db.WithContext(ctx).Create(plan).Error
	}
	plan.ID = existing.ID
	plan.CreatedAt = existing.CreatedAt
	return db.WithContext(ctx).
		Model(&domain.RatePlan{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"name":              plan.Name,
			"daily_fee_cents":   plan.DailyFeeCents,
			"free_km_per_day":   plan.FreeKmPerDay,
			"overage_fee_cents": plan.OverageFeeCents,
			"tax_rate_percent":  plan.TaxRatePercent,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.RatePlan, error) {
	var plan domain.RatePlan
	err := db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.RatePlan, error) {
	var plan domain.RatePlan
	err := db.WithContext(ctx).Where("code = ?", code).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.RatePlan, error) {
	var plans []domain.RatePlan
	err := db.WithContext(ctx).Order("daily_fee_cents asc").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
