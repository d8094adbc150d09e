package margin

import (
	"github.com/capquotelabs/capquote/internal/margin/repository"
	"github.com/capquotelabs/capquote/internal/margin/service"
	"go.uber.org/fx"
)

var Module = fx.Module("margin.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
