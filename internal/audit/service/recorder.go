package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"github.com/capquotelabs/capquote/internal/clock"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  auditdomain.Repository
}

type Recorder struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  auditdomain.Repository
}

func NewRecorder(p Params) auditdomain.Recorder {
	return &Recorder{
		db:    p.DB,
		log:   p.Log.Named("audit.recorder"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// Record appends the event. The audit trail is append-only; the assigned ID
// is returned so responses can reference the record.
func (r *Recorder) Record(ctx context.Context, event auditdomain.Event) (snowflake.ID, error) {
	event.ID = r.genID.Generate()
	event.CreatedAt = r.clock.Now(ctx)

	if err := r.repo.Insert(ctx, r.db, &event); err != nil {
		return 0, err
	}
	return event.ID, nil
}
