package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	auditdomain "github.com/capquotelabs/capquote/internal/audit/domain"
	"gorm.io/gorm"
)

type ExportService struct {
	db   *gorm.DB
	repo auditdomain.Repository
}

func NewExportService(db *gorm.DB, repo auditdomain.Repository) auditdomain.ExportService {
	return &ExportService{db: db, repo: repo}
}

func (s *ExportService) Export(ctx context.Context, req auditdomain.ExportRequest) (*auditdomain.ExportResult, error) {
	events, err := s.repo.ListRange(ctx, s.db, req.StartDate, req.EndDate, req.Contexts)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch req.Format {
	case auditdomain.ExportFormatCSV:
		data, err = formatCSV(events)
	case auditdomain.ExportFormatJSON:
		data, err = formatJSON(events)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", req.Format)
	}
	if err != nil {
		return nil, err
	}

	checksum := sha256.Sum256(data)
	return &auditdomain.ExportResult{
		Data:     data,
		Checksum: hex.EncodeToString(checksum[:]),
		Format:   req.Format,
		Count:    len(events),
	}, nil
}

func formatCSV(events []auditdomain.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id",
		"created_at",
		"context",
		"is_valid",
		"validation_score",
		"margin_applied",
		"margin_fallback",
		"duration_ms",
		"input_summary",
		"output_breakdown",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, event := range events {
		row := []string{
			event.ID.String(),
			event.CreatedAt.Format(time.RFC3339),
			event.Context,
			strconv.FormatBool(event.IsValid),
			strconv.Itoa(event.ValidationScore),
			strconv.FormatBool(event.MarginApplied),
			event.MarginFallback,
			strconv.FormatInt(event.DurationMs, 10),
			string(event.InputSummary),
			string(event.OutputBreakdown),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatJSON(events []auditdomain.Event) ([]byte, error) {
	type exportRecord struct {
		ID              string          `json:"id"`
		CreatedAt       string          `json:"created_at"`
		Context         string          `json:"context"`
		IsValid         bool            `json:"is_valid"`
		ValidationScore int             `json:"validation_score"`
		MarginApplied   bool            `json:"margin_applied"`
		MarginFallback  string          `json:"margin_fallback,omitempty"`
		DurationMs      int64           `json:"duration_ms"`
		InputSummary    json.RawMessage `json:"input_summary"`
		OutputBreakdown json.RawMessage `json:"output_breakdown"`
	}

	records := make([]exportRecord, 0, len(events))
	for _, event := range events {
		records = append(records, exportRecord{
			ID:              event.ID.String(),
			CreatedAt:       event.CreatedAt.Format(time.RFC3339),
			Context:         event.Context,
			IsValid:         event.IsValid,
			ValidationScore: event.ValidationScore,
			MarginApplied:   event.MarginApplied,
			MarginFallback:  event.MarginFallback,
			DurationMs:      event.DurationMs,
			InputSummary:    json.RawMessage(event.InputSummary),
			OutputBreakdown: json.RawMessage(event.OutputBreakdown),
		})
	}

	return json.MarshalIndent(records, "", "  ")
}
