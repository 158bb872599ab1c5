package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock is the current-date source used by date-gated booking rules.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewSystemClock() Clock {
	return systemClock{}
}

// Module wires the system clock for the application.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
