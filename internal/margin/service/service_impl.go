package service

import (
	"context"

	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo margindomain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo margindomain.Repository
}

func New(p Params) margindomain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("margin.service"),
		repo: p.Repo,
	}
}

// Resolve reads the active settings and fills every missing category from the
// hardcoded defaults. A store failure falls back to defaults entirely.
func (s *Service) Resolve(ctx context.Context) map[margindomain.Category]margindomain.Setting {
	effective := margindomain.Defaults()

	stored, err := s.repo.ListActive(ctx, s.db)
	if err != nil {
		s.log.Warn("margin settings unavailable, using defaults", zap.Error(err))
		return effective
	}

	for _, setting := range stored {
		if _, known := effective[setting.Category]; !known {
			s.log.Warn("ignoring margin setting for unknown category",
				zap.String("category", string(setting.Category)))
			continue
		}
		effective[setting.Category] = setting
	}
	return effective
}
