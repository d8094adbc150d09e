package repository

import (
	"context"

	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() margindomain.Repository {
	return &repo{}
}

func (r *repo) ListActive(ctx context.Context, db *gorm.DB) ([]margindomain.Setting, error) {
	var settings []margindomain.Setting
	err := db.WithContext(ctx).Raw(
		`SELECT id, category, margin_percent, flat_margin, is_active, updated_at
		 FROM margin_settings WHERE is_active = ? ORDER BY category`, true,
	).Scan(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}
