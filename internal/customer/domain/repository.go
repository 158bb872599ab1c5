package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListCustomerFilter struct {
	Kind Kind
	Name string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	FindByIdentity(ctx context.Context, db *gorm.DB, kind Kind, identityNo string) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, filter ListCustomerFilter) ([]Customer, error)
}
