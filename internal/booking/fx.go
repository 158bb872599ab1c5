package booking

import (
	"github.com/ecoride/ecoride/internal/booking/repository"
	"github.com/ecoride/ecoride/internal/booking/service"
	"go.uber.org/fx"
)

var Module = fx.Module("booking.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
