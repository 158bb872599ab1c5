package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/vehicle/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, vehicle *domain.Vehicle) error {
	return db.WithContext(ctx).Create(vehicle).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *repo) FindByPlate(ctx context.Context, db *gorm.DB, plateNo string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := db.WithContext(ctx).
		Where("plate_no = ?", plateNo).
		First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, status domain.Status) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	stmt := db.WithContext(ctx).Model(&domain.Vehicle{})
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	err := stmt.Order("created_at desc, id desc").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *repo) UpdateStatusIf(ctx context.Context, db *gorm.DB, id snowflake.ID, from, to domain.Status, at time.Time) (bool, error) {
	res := db.WithContext(ctx).
		Model(&domain.Vehicle{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
