package vehicle

import (
	"github.com/ecoride/ecoride/internal/vehicle/repository"
	"github.com/ecoride/ecoride/internal/vehicle/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vehicle.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
