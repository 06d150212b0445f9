package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	e, ok := Products().Lookup(0)
	assert.True(t, ok)
	assert.Equal(t, "HyperX Cloud Stinger 2", e.Name)
	assert.Equal(t, "139", e.Price)

	e, ok = PCParts().Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "Gigabyte RTX 3050 EAGLE", e.Name)

	_, ok = Products().Lookup(3)
	assert.False(t, ok)
	_, ok = PCParts().Lookup(-1)
	assert.False(t, ok)
}

func TestEntriesIsACopy(t *testing.T) {
	entries := Products().Entries()
	entries[0].Price = "1"

	e, _ := Products().Lookup(0)
	assert.Equal(t, "139", e.Price)
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 2)
	assert.Equal(t, "/products", all[0].Path())
	assert.Equal(t, "/pcparts", all[1].Path())
	for _, c := range all {
		assert.Len(t, c.Entries(), 3)
	}
}
