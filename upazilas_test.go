package bdgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpazilaNestedGroupsFlattened(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	// Keraniganj and Dohar ship inside a nested array in the table
	// and must still resolve after flattening.
	for _, name := range []string{"Keraniganj", "Dohar"} {
		up := d.Upazila(name)
		require.True(t, up.Exists(), "upazila %q", name)
		assert.Equal(t, "Dhaka", up.District(false))
	}

	assert.Len(t, d.UpazilaNames(false), 12)
}

func TestUpazilaParents(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	up := d.Upazila("Amtali")
	require.True(t, up.Exists())
	assert.Equal(t, "আমতলী", up.Name(true))
	assert.Equal(t, "Barguna", up.District(false))
	assert.Equal(t, "বরগুনা", up.District(true))
	assert.Equal(t, "Barishal", up.Division(false))
	assert.Equal(t, "বরিশাল", up.Division(true))
	assert.Equal(t, "Amtali", up.Headquarter())

	// The parent district lists it back.
	dist := d.District(up.District(false))
	require.True(t, dist.Exists())
	assert.Contains(t, dist.Upazilas(), "Amtali")
}

func TestUpazilaUnions(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	up := d.Upazila("Savar")
	require.True(t, up.Exists())
	assert.Equal(t, 12, up.UnionCount())
	assert.Contains(t, up.Unions(), "Tetuljhora")

	// No unions on record yields zero, not a failure.
	betagi := d.Upazila("Betagi")
	require.True(t, betagi.Exists())
	assert.Zero(t, betagi.UnionCount())
	assert.Empty(t, betagi.Unions())
}

func TestUpazilaBilingualLookup(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	en := d.Upazila("Gournadi")
	bn := d.Upazila("গৌরনদী")
	require.True(t, en.Exists())
	require.True(t, bn.Exists())
	assert.Equal(t, en.Record(), bn.Record())
}

func TestUpazilaUnresolved(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	up := d.Upazila("Hogsmeade")
	assert.False(t, up.Exists())
	assert.Empty(t, up.Name(false))
	assert.Empty(t, up.District(false))
	assert.Nil(t, up.Unions())
	assert.Zero(t, up.UnionCount())
	assert.Empty(t, up.MapString())
}
