package migration

import (
	"github.com/capquotelabs/capquote/internal/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(cfg config.Config, conn *gorm.DB) error {
		return Run(cfg, conn)
	}),
)
