package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/booking/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, booking *domain.Booking) error {
	return db.WithContext(ctx).Create(booking).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, booking *domain.Booking) error {
	return db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]interface{}{
			"status":     booking.Status,
			"actual_km":  booking.ActualKm,
			"updated_at": booking.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Booking, error) {
	var booking domain.Booking
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListBookingFilter) ([]domain.Booking, error) {
	var bookings []domain.Booking
	stmt := db.WithContext(ctx).Model(&domain.Booking{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.CustomerID != 0 {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}
	err := stmt.Order("created_at desc, id desc").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
