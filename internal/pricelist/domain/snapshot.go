package domain

import (
	"strings"

	"github.com/gosimple/slug"
)

// Snapshot is an immutable, request-scoped view of the price catalog with
// name and slug indexes per category.
type Snapshot struct {
	rows   []PriceRow
	byName map[string]int
	bySlug map[string]int
}

func NewSnapshot(rows []PriceRow) *Snapshot {
	s := &Snapshot{
		rows:   rows,
		byName: make(map[string]int, len(rows)),
		bySlug: make(map[string]int, len(rows)),
	}
	for i, row := range rows {
		nameKey := indexKey(row.Category, strings.ToLower(row.Name))
		if _, exists := s.byName[nameKey]; !exists {
			s.byName[nameKey] = i
		}
		rowSlug := row.Slug
		if rowSlug == "" {
			rowSlug = slug.Make(row.Name)
		}
		slugKey := indexKey(row.Category, rowSlug)
		if _, exists := s.bySlug[slugKey]; !exists {
			s.bySlug[slugKey] = i
		}
	}
	return s
}

// Find resolves a row within a category by exact name first, then by slug, so
// "Carved Buckle" and "carved-buckle" land on the same row.
func (s *Snapshot) Find(category Category, name string) (PriceRow, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return PriceRow{}, false
	}
	if i, ok := s.byName[indexKey(category, strings.ToLower(trimmed))]; ok {
		return s.rows[i], true
	}
	if i, ok := s.bySlug[indexKey(category, slug.Make(trimmed))]; ok {
		return s.rows[i], true
	}
	return PriceRow{}, false
}

func (s *Snapshot) Rows() []PriceRow {
	out := make([]PriceRow, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *Snapshot) Len() int { return len(s.rows) }

func indexKey(category Category, name string) string {
	return string(category) + "|" + name
}
