package customer

import (
	"github.com/ecoride/ecoride/internal/customer/repository"
	"github.com/ecoride/ecoride/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
