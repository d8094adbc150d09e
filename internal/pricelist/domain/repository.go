package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Load(ctx context.Context, db *gorm.DB) ([]PriceRow, error)
}

// Service hands out request-scoped snapshots of the catalog.
type Service interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}
