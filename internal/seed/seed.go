// Package seed installs the default cap catalog and margin settings so a
// fresh instance can price orders immediately.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	margindomain "github.com/capquotelabs/capquote/internal/margin/domain"
	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	pricelistrepository "github.com/capquotelabs/capquote/internal/pricelist/repository"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type seedRow struct {
	name     string
	category pricelistdomain.Category
	prices   [6]string
}

var defaultCatalog = []seedRow{
	// Embroidery: size-scaled rows plus the flat 3D base row.
	{"Small Size Embroidery", pricelistdomain.CategoryDecoration, [6]string{"0.70", "0.60", "0.50", "0.45", "0.40", "0.35"}},
	{"Medium Size Embroidery", pricelistdomain.CategoryDecoration, [6]string{"1.00", "0.85", "0.70", "0.60", "0.50", "0.45"}},
	{"Large Size Embroidery", pricelistdomain.CategoryDecoration, [6]string{"1.50", "1.25", "1.00", "0.85", "0.70", "0.60"}},
	{"3D Embroidery", pricelistdomain.CategoryDecoration, [6]string{"0.50", "0.45", "0.40", "0.35", "0.30", "0.25"}},

	{"Small Print Woven Patch", pricelistdomain.CategoryDecoration, [6]string{"0.80", "0.70", "0.60", "0.50", "0.45", "0.40"}},
	{"Medium Print Woven Patch", pricelistdomain.CategoryDecoration, [6]string{"1.10", "0.95", "0.80", "0.70", "0.60", "0.50"}},
	{"Large Print Woven Patch", pricelistdomain.CategoryDecoration, [6]string{"1.60", "1.35", "1.10", "0.95", "0.80", "0.70"}},

	{"Small Rubber Patch", pricelistdomain.CategoryDecoration, [6]string{"1.20", "1.05", "0.90", "0.80", "0.70", "0.60"}},
	{"Medium Rubber Patch", pricelistdomain.CategoryDecoration, [6]string{"1.50", "1.30", "1.10", "0.95", "0.85", "0.75"}},
	{"Large Rubber Patch", pricelistdomain.CategoryDecoration, [6]string{"2.00", "1.75", "1.50", "1.30", "1.10", "0.95"}},

	{"Small Leather Patch", pricelistdomain.CategoryDecoration, [6]string{"1.30", "1.15", "1.00", "0.90", "0.80", "0.70"}},
	{"Medium Leather Patch", pricelistdomain.CategoryDecoration, [6]string{"1.60", "1.40", "1.20", "1.05", "0.95", "0.85"}},
	{"Large Leather Patch", pricelistdomain.CategoryDecoration, [6]string{"2.10", "1.85", "1.60", "1.40", "1.20", "1.05"}},

	// Application methods priced on top of the decoration when not Direct.
	{"Satin", pricelistdomain.CategoryDecoration, [6]string{"0.30", "0.25", "0.20", "0.18", "0.15", "0.12"}},
	{"Heat Transfer", pricelistdomain.CategoryDecoration, [6]string{"0.40", "0.35", "0.30", "0.25", "0.20", "0.18"}},

	// One-time tooling charges; the tier still follows order volume.
	{"Small Mold Charge", pricelistdomain.CategoryMold, [6]string{"50.00", "50.00", "45.00", "45.00", "40.00", "40.00"}},
	{"Medium Mold Charge", pricelistdomain.CategoryMold, [6]string{"80.00", "80.00", "70.00", "70.00", "60.00", "60.00"}},
	{"Large Mold Charge", pricelistdomain.CategoryMold, [6]string{"120.00", "120.00", "100.00", "100.00", "80.00", "80.00"}},

	{"Hang Tag", pricelistdomain.CategoryAccessories, [6]string{"0.35", "0.30", "0.25", "0.22", "0.20", "0.18"}},
	{"Sticker", pricelistdomain.CategoryAccessories, [6]string{"0.25", "0.22", "0.18", "0.16", "0.14", "0.12"}},
	{"B-Tape Label", pricelistdomain.CategoryAccessories, [6]string{"0.30", "0.26", "0.22", "0.20", "0.18", "0.16"}},
	{"Inside Label", pricelistdomain.CategoryAccessories, [6]string{"0.40", "0.35", "0.30", "0.26", "0.24", "0.22"}},

	{"Flexfit", pricelistdomain.CategoryPremiumClosure, [6]string{"0.90", "0.80", "0.70", "0.62", "0.55", "0.50"}},
	{"Fitted", pricelistdomain.CategoryPremiumClosure, [6]string{"0.70", "0.62", "0.55", "0.50", "0.45", "0.40"}},
	{"Metal Buckle", pricelistdomain.CategoryPremiumClosure, [6]string{"0.60", "0.52", "0.45", "0.40", "0.36", "0.32"}},

	{"Acrylic", pricelistdomain.CategoryPremiumFabric, [6]string{"0.60", "0.52", "0.45", "0.40", "0.36", "0.32"}},
	{"Suede Cotton", pricelistdomain.CategoryPremiumFabric, [6]string{"0.80", "0.70", "0.60", "0.54", "0.48", "0.42"}},
	{"Genuine Leather", pricelistdomain.CategoryPremiumFabric, [6]string{"1.40", "1.25", "1.10", "1.00", "0.90", "0.80"}},
	{"Camo", pricelistdomain.CategoryPremiumFabric, [6]string{"0.50", "0.44", "0.38", "0.34", "0.30", "0.26"}},
	{"Laser Cut", pricelistdomain.CategoryPremiumFabric, [6]string{"0.70", "0.62", "0.54", "0.48", "0.42", "0.38"}},

	{"Regular Delivery", pricelistdomain.CategoryShipping, [6]string{"2.80", "2.50", "2.20", "2.00", "1.80", "1.60"}},
	{"Priority Delivery", pricelistdomain.CategoryShipping, [6]string{"3.60", "3.20", "2.80", "2.50", "2.30", "2.10"}},
	{"Air Freight", pricelistdomain.CategoryShipping, [6]string{"1.20", "1.05", "0.90", "0.80", "0.70", "0.60"}},
	{"Sea Freight", pricelistdomain.CategoryShipping, [6]string{"0.60", "0.52", "0.45", "0.40", "0.35", "0.30"}},
}

// EnsureDefaultCatalog inserts the default price rows and margin settings
// when their tables are empty. Existing data is never touched.
func EnsureDefaultCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensurePriceRows(tx, node); err != nil {
			return err
		}
		return ensureMarginSettings(tx, node)
	})
}

func ensurePriceRows(tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.Model(&pricelistrepository.Record{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	records := make([]pricelistrepository.Record, 0, len(defaultCatalog))
	for _, row := range defaultCatalog {
		records = append(records, pricelistrepository.Record{
			ID:         node.Generate(),
			Name:       row.name,
			Slug:       slug.Make(row.name),
			Category:   string(row.category),
			Price48:    row.prices[0],
			Price144:   row.prices[1],
			Price576:   row.prices[2],
			Price1152:  row.prices[3],
			Price2880:  row.prices[4],
			Price10000: row.prices[5],
		})
	}
	return tx.Create(&records).Error
}

func ensureMarginSettings(tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.Model(&margindomain.Setting{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	settings := make([]margindomain.Setting, 0, 3)
	for _, setting := range margindomain.Defaults() {
		setting.ID = node.Generate()
		setting.UpdatedAt = now
		settings = append(settings, setting)
	}
	return tx.Create(&settings).Error
}
