package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/capquotelabs/capquote/internal/config"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	"github.com/capquotelabs/capquote/internal/pricelist/service"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stubRepo struct {
	rows  []pricelistdomain.PriceRow
	err   error
	calls int
}

func (r *stubRepo) Load(ctx context.Context, db *gorm.DB) ([]pricelistdomain.PriceRow, error) {
	r.calls++
	return r.rows, r.err
}

func TestSnapshotServesEmptyOnSourceFailure(t *testing.T) {
	repo := &stubRepo{err: errors.New("relation does not exist")}
	svc := service.New(service.Params{
		DB:   &gorm.DB{},
		Log:  zap.NewNop(),
		Cfg:  config.Config{},
		Repo: repo,
	})

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err, "source failure must not surface to callers")
	assert.Equal(t, 0, snap.Len())
}

func TestSnapshotCachesRows(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	repo := &stubRepo{rows: []pricelistdomain.PriceRow{
		{Name: "Regular Delivery", Category: pricelistdomain.CategoryShipping, Price48: 1.50},
	}}
	svc := service.New(service.Params{
		DB:    &gorm.DB{},
		Log:   zap.NewNop(),
		Cfg:   config.Config{},
		Repo:  repo,
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	})

	ctx := context.Background()

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 1, repo.calls)

	// Second read comes from the cache without touching the repository.
	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 1, repo.calls)

	row, ok := snap.Find(pricelistdomain.CategoryShipping, "regular-delivery")
	require.True(t, ok)
	assert.Equal(t, 1.50, row.Price48)
}

func TestSnapshotFallsBackWhenCacheUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	repo := &stubRepo{rows: []pricelistdomain.PriceRow{
		{Name: "Sticker", Category: pricelistdomain.CategoryAccessories, Price48: 0.15},
	}}
	svc := service.New(service.Params{
		DB:    &gorm.DB{},
		Log:   zap.NewNop(),
		Cfg:   config.Config{},
		Repo:  repo,
		Redis: redis.NewClient(&redis.Options{Addr: addr}),
	})

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Len())
	assert.Equal(t, 1, repo.calls)
}
