// Package domain contains the append-only audit trail of cost calculations.
package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event is one immutable record of a finished calculation. Corrections are
// new events, never updates.
type Event struct {
	ID              snowflake.ID   `gorm:"primaryKey" json:"id"`
	Context         string         `gorm:"type:text;not null;index" json:"context"`
	InputSummary    datatypes.JSON `gorm:"not null" json:"input_summary"`
	OutputBreakdown datatypes.JSON `gorm:"not null" json:"output_breakdown"`
	IsValid         bool           `gorm:"not null" json:"is_valid"`
	ValidationScore int            `gorm:"not null" json:"validation_score"`
	MarginApplied   bool           `gorm:"not null" json:"margin_applied"`
	MarginFallback  string         `gorm:"type:text" json:"margin_fallback,omitempty"`
	DurationMs      int64          `gorm:"not null" json:"duration_ms"`
	CreatedAt       time.Time      `gorm:"not null;index" json:"created_at"`
}

func (Event) TableName() string { return "audit_events" }

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, event *Event) error
	ListRange(ctx context.Context, db *gorm.DB, start, end time.Time, contexts []string) ([]Event, error)
}

// Recorder appends one event per calculation. Implementations assign the ID
// and timestamp.
type Recorder interface {
	Record(ctx context.Context, event Event) (snowflake.ID, error)
}

// ExportFormat selects the audit export encoding.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatJSON ExportFormat = "json"
)

type ExportRequest struct {
	StartDate time.Time
	EndDate   time.Time
	Format    ExportFormat
	Contexts  []string
}

type ExportResult struct {
	Data     []byte
	Checksum string
	Format   ExportFormat
	Count    int
}

type ExportService interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}
