package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusReserved, StatusCompleted, true},
		{StatusReserved, StatusCancelled, true},
		{StatusReserved, StatusReserved, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusReserved, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCancelled, StatusReserved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 6, 1, 23, 50, 0, 0, time.UTC)

	tests := []struct {
		name string
		to   time.Time
		want int64
	}{
		{"same day", time.Date(2025, 6, 1, 0, 5, 0, 0, time.UTC), 0},
		{"next morning counts as one", time.Date(2025, 6, 2, 0, 10, 0, 0, time.UTC), 1},
		{"three days out", time.Date(2025, 6, 4, 8, 0, 0, 0, time.UTC), 3},
		{"past date is negative", time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC), -2},
		{"month boundary", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(base, tt.to))
		})
	}
}
