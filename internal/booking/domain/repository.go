package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListBookingFilter struct {
	Status     Status
	CustomerID snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, booking *Booking) error
	Update(ctx context.Context, db *gorm.DB, booking *Booking) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Booking, error)
	List(ctx context.Context, db *gorm.DB, filter ListBookingFilter) ([]Booking, error)
}
