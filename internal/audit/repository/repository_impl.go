package repository

import (
	"context"
	"time"

	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() auditdomain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, event *auditdomain.Event) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *repo) ListRange(ctx context.Context, db *gorm.DB, start, end time.Time, contexts []string) ([]auditdomain.Event, error) {
	query := db.WithContext(ctx).Model(&auditdomain.Event{}).
		Where("created_at >= ? AND created_at < ?", start, end)

	if len(contexts) > 0 {
		query = query.Where("context IN ?", contexts)
	}

	var events []auditdomain.Event
	if err := query.Order("created_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
