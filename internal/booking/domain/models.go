package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusReserved  Status = "RESERVED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusReserved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions is the booking state machine. COMPLETED and CANCELLED are
// terminal.
var transitions = map[Status][]Status{
	StatusReserved:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Booking is one rental reservation. BookingDate is the pickup date;
// EstimatedKm prices the reservation up front, ActualKm replaces it at
// completion.
type Booking struct {
	ID           snowflake.ID  `gorm:"primaryKey" json:"id"`
	CustomerID   snowflake.ID  `gorm:"not null;index" json:"customer_id"`
	VehicleID    snowflake.ID  `gorm:"not null;index" json:"vehicle_id"`
	DriverID     *snowflake.ID `gorm:"index" json:"driver_id,omitempty"`
	BookingDate  time.Time     `gorm:"not null" json:"booking_date"`
	RentalDays   int64         `gorm:"not null" json:"rental_days"`
	EstimatedKm  float64       `gorm:"not null" json:"estimated_km"`
	ActualKm     float64       `gorm:"not null;default:0" json:"actual_km"`
	DepositCents int64         `gorm:"not null" json:"deposit_cents"`
	Status       Status        `gorm:"not null" json:"status"`
	CreatedAt    time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"not null" json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

// DaysBetween returns the whole-day calendar difference between two instants.
// Clock times are discarded: a booking for tomorrow morning made tonight is
// one day out.
func DaysBetween(from, to time.Time) int64 {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int64(t.Sub(f).Hours() / 24)
}
