package pricelist

import (
	"github.com/capquotelabs/capquote/internal/pricelist/repository"
	"github.com/capquotelabs/capquote/internal/pricelist/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricelist.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
