package bdgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnionFullAddress(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	un := d.Union("Burirchar")
	require.True(t, un.Exists())

	// Descending hierarchy, comma-space separated.
	assert.Equal(t, "Burirchar, Barguna Sadar, Barguna, Barishal", un.FullAddress(false))
	assert.Equal(t, "বুড়িরচর, বরগুনা সদর, বরগুনা, বরিশাল", un.FullAddress(true))
}

func TestUnionParents(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	un := d.Union("Mahilara")
	require.True(t, un.Exists())
	assert.Equal(t, "মাহিলাড়া", un.Name(true))
	assert.Equal(t, "Gournadi", un.Upazila(false))
	assert.Equal(t, "Barishal", un.District(false))
	assert.Equal(t, "Barishal", un.Division(false))

	// The parent upazila lists it back.
	up := d.Upazila(un.Upazila(false))
	require.True(t, up.Exists())
	assert.Contains(t, up.Unions(), "Mahilara")
}

func TestUnionBilingualLookup(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	en := d.Union("Tetuljhora")
	bn := d.Union("তেঁতুলঝোড়া")
	require.True(t, en.Exists())
	require.True(t, bn.Exists())
	assert.Equal(t, en.Record(), bn.Record())
}

func TestUnionUnresolved(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	un := d.Union("Shire")
	assert.False(t, un.Exists())
	assert.Empty(t, un.Name(false))
	assert.Empty(t, un.Upazila(false))
	assert.Empty(t, un.FullAddress(false))
	assert.Empty(t, un.FullAddress(true))
}

func TestUnionDuplicateNamesFirstWins(t *testing.T) {
	// A fixture table carries two unions named Haldia under different
	// upazilas; lookup must return the earlier record.
	d, err := New(WithDataDir("testdata/dup"))
	require.NoError(t, err)

	un := d.Union("Haldia")
	require.True(t, un.Exists())
	assert.Equal(t, "Amtali", un.Upazila(false))
	assert.Equal(t, 1, un.ID())
}
