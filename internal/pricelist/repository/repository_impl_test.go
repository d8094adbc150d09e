package repository

import (
	"context"
	"testing"

	pricelistdomain "github.com/capquotelabs/capquote/internal/pricelist/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"3.50", 3.50},
		{" 3.50 ", 3.50},
		{"$1,234.50", 1234.50},
		{"$0.85", 0.85},
		{"0", 0},
		{"", 0},
		{"n/a", 0},
		{"free", 0},
		{"-2.00", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePrice(tc.raw), "raw %q", tc.raw)
	}
}

func TestLoadDiscardsEmptyNamesAndParsesPrices(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Record{}))

	records := []Record{
		{ID: 1, Name: "Flexfit", Category: string(pricelistdomain.CategoryPremiumClosure),
			Price48: "$2.00", Price144: "1.80", Price576: "1.50", Price1152: "1.30", Price2880: "1.10", Price10000: "0.90"},
		{ID: 2, Name: "   ", Category: string(pricelistdomain.CategoryAccessories), Price48: "0.30"},
		{ID: 3, Name: "Hang Tag", Category: string(pricelistdomain.CategoryAccessories),
			Price48: "0.30", Price144: "garbage", Price576: "", Price1152: "0.20", Price2880: "-1", Price10000: "0.10"},
	}
	require.NoError(t, db.Create(&records).Error)

	rows, err := Provide().Load(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank-name row must be discarded")

	snap := pricelistdomain.NewSnapshot(rows)

	closure, ok := snap.Find(pricelistdomain.CategoryPremiumClosure, "Flexfit")
	require.True(t, ok)
	assert.Equal(t, 2.00, closure.Price48)
	assert.Equal(t, 0.90, closure.Price10000)

	tag, ok := snap.Find(pricelistdomain.CategoryAccessories, "Hang Tag")
	require.True(t, ok)
	assert.Equal(t, 0.30, tag.Price48)
	assert.Equal(t, 0.0, tag.Price144, "unparsable cell prices at zero")
	assert.Equal(t, 0.0, tag.Price576)
	assert.Equal(t, 0.0, tag.Price2880, "negative cell prices at zero")
	assert.Equal(t, 0.10, tag.Price10000)
}
