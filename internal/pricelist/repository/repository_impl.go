package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	"gorm.io/gorm"
)

// Record mirrors the imported tabular source: price columns arrive as text
// and are parsed on load so one bad cell never poisons the catalog.
type Record struct {
	ID         snowflake.ID `gorm:"primaryKey"`
	Name       string       `gorm:"type:text;not null"`
	Slug       string       `gorm:"type:text;index"`
	Category   string       `gorm:"type:text;not null;index"`
	Price48    string       `gorm:"column:price_48;type:text"`
	Price144   string       `gorm:"column:price_144;type:text"`
	Price576   string       `gorm:"column:price_576;type:text"`
	Price1152  string       `gorm:"column:price_1152;type:text"`
	Price2880  string       `gorm:"column:price_2880;type:text"`
	Price10000 string       `gorm:"column:price_10000;type:text"`
}

func (Record) TableName() string { return "price_rows" }

type repo struct{}

func Provide() pricelistdomain.Repository {
	return &repo{}
}

func (r *repo) Load(ctx context.Context, db *gorm.DB) ([]pricelistdomain.PriceRow, error) {
	var records []Record
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, category,
		 price_48, price_144, price_576, price_1152, price_2880, price_10000
		 FROM price_rows ORDER BY category, name`,
	).Scan(&records).Error
	if err != nil {
		return nil, err
	}

	rows := make([]pricelistdomain.PriceRow, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		rows = append(rows, pricelistdomain.PriceRow{
			ID:         rec.ID,
			Name:       strings.TrimSpace(rec.Name),
			Slug:       strings.TrimSpace(rec.Slug),
			Category:   pricelistdomain.Category(rec.Category),
			Price48:    ParsePrice(rec.Price48),
			Price144:   ParsePrice(rec.Price144),
			Price576:   ParsePrice(rec.Price576),
			Price1152:  ParsePrice(rec.Price1152),
			Price2880:  ParsePrice(rec.Price2880),
			Price10000: ParsePrice(rec.Price10000),
		})
	}
	return rows, nil
}

// ParsePrice tolerates spreadsheet-shaped values ("$1,234.50", " 3.50 ").
// Anything unparsable prices at zero per the source contract.
func ParsePrice(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
