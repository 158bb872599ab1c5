package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/invoice/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).Create(invoice).Error
}

func (r *repo) UpdateAmounts(ctx context.Context, db *gorm.DB, invoice *domain.Invoice) error {
	return db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", invoice.ID).
		Updates(map[string]interface{}{
			"base_cents":       invoice.BaseCents,
			"overage_cents":    invoice.OverageCents,
			"discount_cents":   invoice.DiscountCents,
			"driver_fee_cents": invoice.DriverFeeCents,
			"tax_cents":        invoice.TaxCents,
			"deposit_cents":    invoice.DepositCents,
			"total_cents":      invoice.TotalCents,
			"updated_at":       invoice.UpdatedAt,
		}).Error
}

func (r *repo) FindByBookingID(ctx context.Context, db *gorm.DB, bookingID snowflake.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *repo) NextSeq(ctx context.Context, db *gorm.DB) (int64, error) {
	var max int64
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
