package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/driver/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, driver *domain.Driver) error {
	return db.WithContext(ctx).Create(driver).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Driver, error) {
	var driver domain.Driver
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *repo) FindByLicense(ctx context.Context, db *gorm.DB, licenseNo string) (*domain.Driver, error) {
	var driver domain.Driver
	err := db.WithContext(ctx).
		Where("license_no = ?", licenseNo).
		First(&driver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, status domain.Status) ([]domain.Driver, error) {
	var drivers []domain.Driver
	stmt := db.WithContext(ctx).Model(&domain.Driver{})
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	err := stmt.Order("created_at desc, id desc").Find(&drivers).Error
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *repo) UpdateStatusIf(ctx context.Context, db *gorm.DB, id snowflake.ID, from, to domain.Status, at time.Time) (bool, error) {
	res := db.WithContext(ctx).
		Model(&domain.Driver{}).
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
