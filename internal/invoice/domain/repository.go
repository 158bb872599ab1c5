package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	// UpdateAmounts rewrites the monetary columns of an existing invoice.
	// Number and Seq are immutable once issued.
	UpdateAmounts(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByBookingID(ctx context.Context, db *gorm.DB, bookingID snowflake.ID) (*Invoice, error)
	// NextSeq returns the next monotonic invoice sequence. Call inside the
	// same transaction that inserts the invoice.
	NextSeq(ctx context.Context, db *gorm.DB) (int64, error)
}
