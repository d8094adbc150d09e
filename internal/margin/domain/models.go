// Package domain defines the category-scoped margin settings overlaid on raw
// costs.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryBlankCaps      Category = "blank_caps"
	CategoryCustomizations Category = "customizations"
	CategoryDelivery       Category = "delivery"
)

var ErrInvalidSetting = errors.New("margin: setting is malformed")

// Setting is one category's markup: a percentage plus a flat per-item fee.
type Setting struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id,omitempty"`
	Category      Category     `gorm:"type:text;not null;uniqueIndex" json:"category"`
	MarginPercent float64      `gorm:"not null" json:"margin_percent"`
	FlatMargin    float64      `gorm:"not null" json:"flat_margin"`
	IsActive      bool         `gorm:"not null;default:true" json:"is_active"`
	UpdatedAt     time.Time    `gorm:"not null" json:"updated_at,omitempty"`
}

func (Setting) TableName() string { return "margin_settings" }

// Defaults are the in-process fallback used whenever the settings store is
// unavailable or has no active record for a category.
func Defaults() map[Category]Setting {
	return map[Category]Setting{
		CategoryBlankCaps:      {Category: CategoryBlankCaps, MarginPercent: 60, FlatMargin: 0, IsActive: true},
		CategoryCustomizations: {Category: CategoryCustomizations, MarginPercent: 65, FlatMargin: 0.10, IsActive: true},
		CategoryDelivery:       {Category: CategoryDelivery, MarginPercent: 50, FlatMargin: 0.25, IsActive: true},
	}
}

type Repository interface {
	ListActive(ctx context.Context, db *gorm.DB) ([]Setting, error)
}

// Service resolves the effective per-category settings for one calculation.
type Service interface {
	Resolve(ctx context.Context) map[Category]Setting
}
