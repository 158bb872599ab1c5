package rateplan

import (
	"context"

	"github.com/ecoride/ecoride/internal/config"
	"github.com/ecoride/ecoride/internal/rateplan/domain"
	"github.com/ecoride/ecoride/internal/rateplan/repository"
	"github.com/ecoride/ecoride/internal/rateplan/service"
	"go.uber.org/fx"
)

var Module = fx.Module("rateplan.service",
	fx.Provide(config.NewRatePlanHolder),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
	fx.Invoke(syncCatalog),
)

func syncCatalog(svc domain.Service) error {
	return svc.SyncCatalog(context.Background())
}
