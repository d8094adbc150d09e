package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/capquotelabs/capquote/internal/config"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const snapshotCacheKey = "capquote:pricelist:snapshot"

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Cfg   config.Config
	Repo  pricelistdomain.Repository
	Redis *redis.Client `optional:"true"`
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  pricelistdomain.Repository
	redis *redis.Client
	ttl   time.Duration
}

func New(p Params) pricelistdomain.Service {
	ttl := p.Cfg.Pricing.SnapshotTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("pricelist.service"),
		repo:  p.Repo,
		redis: p.Redis,
		ttl:   ttl,
	}
}

// Snapshot returns the current catalog view. A transient source failure
// yields an empty snapshot rather than an error; callers price what they can.
func (s *Service) Snapshot(ctx context.Context) (*pricelistdomain.Snapshot, error) {
	if rows, ok := s.fromCache(ctx); ok {
		return pricelistdomain.NewSnapshot(rows), nil
	}

	rows, err := s.repo.Load(ctx, s.db)
	if err != nil {
		s.log.Error("price catalog load failed, serving empty snapshot", zap.Error(err))
		return pricelistdomain.NewSnapshot(nil), nil
	}

	s.toCache(ctx, rows)
	return pricelistdomain.NewSnapshot(rows), nil
}

func (s *Service) fromCache(ctx context.Context) ([]pricelistdomain.PriceRow, bool) {
	if s.redis == nil {
		return nil, false
	}
	payload, err := s.redis.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("price snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var rows []pricelistdomain.PriceRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		s.log.Warn("price snapshot cache payload invalid", zap.Error(err))
		return nil, false
	}
	return rows, true
}

func (s *Service) toCache(ctx context.Context, rows []pricelistdomain.PriceRow) {
	if s.redis == nil || len(rows) == 0 {
		return
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, snapshotCacheKey, payload, s.ttl).Err(); err != nil {
		s.log.Warn("price snapshot cache write failed", zap.Error(err))
	}
}
