package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackEntryUnits(t *testing.T) {
	assert.Equal(t, 74, PackEntry{Packs: 12, PackSize: 6, Loose: 2}.Units())
	assert.Equal(t, 0, PackEntry{Packs: 0, PackSize: 6}.Units())
	assert.Equal(t, 0, PackEntry{Packs: -1, PackSize: 6}.Units())
	assert.Equal(t, 0, PackEntry{Packs: 5, PackSize: 0}.Units())
}

func TestPackListAvailableUnits(t *testing.T) {
	pl := PackList{
		{VariantName: "250g", Packs: 2, PackSize: 10},
		{VariantName: "500g", Packs: 1, PackSize: 6, Loose: 3},
	}

	assert.Equal(t, 29, pl.AvailableUnits())
	assert.Equal(t, 20, pl.UnitsFor("250g"))
	assert.Equal(t, 9, pl.UnitsFor("500g"))
	assert.Equal(t, 0, pl.UnitsFor("1kg"))
}

func TestPackListConsumeOpensPacks(t *testing.T) {
	pl := PackList{
		{VariantName: "250g", Packs: 2, PackSize: 10},
	}

	require.NoError(t, pl.Consume("250g", 3))

	assert.Equal(t, 1, pl[0].Packs)
	assert.Equal(t, 7, pl[0].Loose)
	assert.Equal(t, 17, pl.UnitsFor("250g"))
}

func TestPackListConsumeExactlyAll(t *testing.T) {
	pl := PackList{
		{VariantName: "250g", Packs: 1, PackSize: 6, Loose: 2},
	}

	require.NoError(t, pl.Consume("250g", 8))
	assert.Equal(t, 0, pl.UnitsFor("250g"))
}

func TestPackListConsumeInsufficientStock(t *testing.T) {
	pl := PackList{
		{VariantName: "250g", Packs: 1, PackSize: 6},
	}

	err := pl.Consume("250g", 7)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Failed consume leaves the entry untouched
	assert.Equal(t, 6, pl.UnitsFor("250g"))
}

func TestPackListConsumeUnknownVariant(t *testing.T) {
	pl := PackList{
		{VariantName: "250g", Packs: 1, PackSize: 6},
	}

	assert.ErrorIs(t, pl.Consume("1kg", 1), ErrInsufficientStock)
}

func TestPackListConsumeEmptyVariantTargetsFirstEntry(t *testing.T) {
	pl := PackList{
		{VariantName: "default", Packs: 2, PackSize: 5},
	}

	require.NoError(t, pl.Consume("", 4))
	assert.Equal(t, 6, pl.UnitsFor("default"))
}

func TestPackListRestore(t *testing.T) {
	pl := PackList{
		{VariantName: "500g", Packs: 0, PackSize: 6, Loose: 1},
	}

	require.NoError(t, pl.Restore("500g", 11))

	assert.Equal(t, 2, pl[0].Packs)
	assert.Equal(t, 0, pl[0].Loose)
}
