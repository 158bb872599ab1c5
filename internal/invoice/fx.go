package invoice

import (
	"github.com/ecoride/ecoride/internal/invoice/repository"
	"github.com/ecoride/ecoride/internal/invoice/service"
	"github.com/ecoride/ecoride/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(pdf.New),
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
