package bdgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostcodeLookup(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	pc := d.Postcode("8710")
	require.True(t, pc.Exists())
	assert.Equal(t, "8710", pc.Code())
	assert.Equal(t, "Amtali", pc.Upazila(false))
	assert.Equal(t, "Barguna", pc.District(false))
	assert.Equal(t, "Barishal", pc.Division(false))
	assert.Equal(t, "আমতলী", pc.Name(true))

	// Surrounding whitespace is ignored, the code itself is exact.
	assert.True(t, d.Postcode(" 8710 ").Exists())
	assert.False(t, d.Postcode("871").Exists())
	assert.False(t, d.Postcode("87100").Exists())
}

func TestPostcodeUnknown(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	pc := d.Postcode("0000")
	assert.False(t, pc.Exists())
	assert.Empty(t, pc.Code())
	assert.Empty(t, pc.Name(false))
	assert.Empty(t, pc.Upazila(false))
	assert.Empty(t, pc.FullAddress(false))

	_, ok := d.FindPostcode("0000")
	assert.False(t, ok)
}

func TestPostcodeFullAddress(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	pc := d.Postcode("8230")
	require.True(t, pc.Exists())

	// Descending hierarchy with the code appended last.
	assert.Equal(t, "Gournadi, Gournadi, Barishal, Barishal, 8230", pc.FullAddress(false))
	assert.Equal(t, "গৌরনদী, গৌরনদী, বরিশাল, বরিশাল, 8230", pc.FullAddress(true))
}

func TestPostcodeList(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	codes := d.PostcodeList()
	assert.GreaterOrEqual(t, len(codes), 10)
	assert.Contains(t, codes, "1000")
	assert.Contains(t, codes, "8710")
}

func TestPostcodeDuplicateCodeFirstWins(t *testing.T) {
	// The fixture table is a bare top-level array with a repeated
	// code; the first record claims the code.
	d, err := New(WithDataDir("testdata/dup"))
	require.NoError(t, err)

	pc := d.Postcode("9999")
	require.True(t, pc.Exists())
	assert.Equal(t, "First Office", pc.Name(false))
	assert.Equal(t, "Amtali", pc.Upazila(false))
}

func TestNewPostcodeDefaultDataset(t *testing.T) {
	pc := NewPostcode("1000")
	require.True(t, pc.Exists())
	assert.Equal(t, "Dhaka GPO", pc.Name(false))
	assert.Equal(t, "Dhaka Sadar", pc.Upazila(false))
}
