package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, driver *Driver) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Driver, error)
	FindByLicense(ctx context.Context, db *gorm.DB, licenseNo string) (*Driver, error)
	List(ctx context.Context, db *gorm.DB, status Status) ([]Driver, error)
	// UpdateStatusIf moves a driver from one status to another in a single
	// guarded statement. Returns false without error when the driver was not
	// in the expected source status.
	UpdateStatusIf(ctx context.Context, db *gorm.DB, id snowflake.ID, from, to Status, at time.Time) (bool, error)
}
