package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/ecoride/ecoride/internal/customer/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"name":       customer.Name,
			"phone":      customer.Phone,
			"email":      customer.Email,
			"updated_at": customer.UpdatedAt,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repo) FindByIdentity(ctx context.Context, db *gorm.DB, kind domain.Kind, identityNo string) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Where("kind = ? AND identity_no = ?", kind, identityNo).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListCustomerFilter) ([]domain.Customer, error) {
	var customers []domain.Customer
	stmt := db.WithContext(ctx).Model(&domain.Customer{})
	if filter.Kind != "" {
		stmt = stmt.Where("kind = ?", filter.Kind)
	}
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	err := stmt.Order("created_at desc, id desc").Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}
