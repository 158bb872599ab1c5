package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Upsert(ctx context.Context, db *gorm.DB, plan *RatePlan) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*RatePlan, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*RatePlan, error)
	List(ctx context.Context, db *gorm.DB) ([]RatePlan, error)
}
