package audit

import (
	"github.com/capquotelabs/capquote/internal/audit/repository"
	"github.com/capquotelabs/capquote/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewRecorder),
	fx.Provide(service.NewExportService),
)
