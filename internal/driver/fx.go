package driver

import (
	"github.com/ecoride/ecoride/internal/driver/repository"
	"github.com/ecoride/ecoride/internal/driver/service"
	"go.uber.org/fx"
)

var Module = fx.Module("driver.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
