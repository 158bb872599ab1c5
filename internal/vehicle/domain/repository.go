package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, vehicle *Vehicle) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Vehicle, error)
	FindByPlate(ctx context.Context, db *gorm.DB, plateNo string) (*Vehicle, error)
	List(ctx context.Context, db *gorm.DB, status Status) ([]Vehicle, error)
	// UpdateStatusIf moves a vehicle from one status to another in a single
	// guarded statement. Returns false without error when the vehicle was not
	// in the expected source status.
	UpdateStatusIf(ctx context.Context, db *gorm.DB, id snowflake.ID, from, to Status, at time.Time) (bool, error)
}
