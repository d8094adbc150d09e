package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitPriceAtSelectsLargestBreakpoint(t *testing.T) {
	row := PriceRow{
		Name:       "Flexfit",
		Category:   CategoryPremiumClosure,
		Price48:    2.00,
		Price144:   1.80,
		Price576:   1.50,
		Price1152:  1.30,
		Price2880:  1.10,
		Price10000: 0.90,
	}

	cases := []struct {
		quantity int
		want     float64
	}{
		{0, 2.00},
		{1, 2.00},
		{47, 2.00},
		{48, 2.00},
		{143, 2.00},
		{144, 1.80},
		{200, 1.80},
		{576, 1.50},
		{1151, 1.50},
		{1152, 1.30},
		{2880, 1.10},
		{9999, 1.10},
		{10000, 0.90},
		{250000, 0.90},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, row.UnitPriceAt(tc.quantity), "quantity %d", tc.quantity)
	}
}

func TestUnitPriceAtMonotonicRow(t *testing.T) {
	row := PriceRow{
		Price48:    4.00,
		Price144:   3.50,
		Price576:   3.00,
		Price1152:  2.80,
		Price2880:  2.60,
		Price10000: 2.40,
	}

	prev := row.UnitPriceAt(0)
	for qty := 1; qty <= 12000; qty += 7 {
		price := row.UnitPriceAt(qty)
		assert.LessOrEqual(t, price, prev, "price rose between quantities around %d", qty)
		prev = price
	}
}

func TestSnapshotFindByNameAndSlug(t *testing.T) {
	snap := NewSnapshot([]PriceRow{
		{Name: "Metal Buckle", Category: CategoryPremiumClosure, Price48: 1.25},
		{Name: "Suede Cotton", Category: CategoryPremiumFabric, Price48: 0.80},
	})

	row, ok := snap.Find(CategoryPremiumClosure, "Metal Buckle")
	assert.True(t, ok)
	assert.Equal(t, "Metal Buckle", row.Name)

	row, ok = snap.Find(CategoryPremiumClosure, "metal-buckle")
	assert.True(t, ok)
	assert.Equal(t, "Metal Buckle", row.Name)

	row, ok = snap.Find(CategoryPremiumClosure, "  metal buckle  ")
	assert.True(t, ok)
	assert.Equal(t, "Metal Buckle", row.Name)

	_, ok = snap.Find(CategoryPremiumFabric, "Metal Buckle")
	assert.False(t, ok, "lookup must not cross categories")

	_, ok = snap.Find(CategoryPremiumClosure, "")
	assert.False(t, ok)

	_, ok = snap.Find(CategoryPremiumClosure, "Carved Buckle")
	assert.False(t, ok)
}

func TestSnapshotRowsReturnsCopy(t *testing.T) {
	snap := NewSnapshot([]PriceRow{{Name: "Hang Tag", Category: CategoryAccessories, Price48: 0.30}})

	rows := snap.Rows()
	rows[0].Name = "mutated"

	row, ok := snap.Find(CategoryAccessories, "Hang Tag")
	assert.True(t, ok)
	assert.Equal(t, "Hang Tag", row.Name)
}
