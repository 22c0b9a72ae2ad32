package bdgeo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestDivisions(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	got := d.SuggestDivisions("Dhka", 2)
	require.NotEmpty(t, got)
	assert.Equal(t, "Dhaka", got[0])

	// Exact names come back at distance zero... still through the
	// suggestion path, not the constructors.
	got = d.SuggestDivisions("sylhet", 1)
	require.NotEmpty(t, got)
	assert.Equal(t, "Sylhet", got[0])
}

func TestSuggestDistricts(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	got := d.SuggestDistricts("Jesore", 2)
	require.NotEmpty(t, got)
	assert.Equal(t, "Jashore", got[0])
}

func TestSuggestDisabledAndEmpty(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	assert.Nil(t, d.SuggestDivisions("Dhka", 0))
	assert.Nil(t, d.SuggestDivisions("", 2))
	assert.Empty(t, d.SuggestDivisions("zzzzzzzzzz", 2))
}

func TestSuggestDistanceCap(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	// A huge distance is capped, so a short garbage query cannot
	// match a long name.
	assert.Empty(t, d.SuggestUpazilas("xy", 100))
}

func TestSuggestDoesNotAffectLookup(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	// Constructors stay exact-match.
	assert.False(t, d.Division("Dhka").Exists())
	assert.False(t, d.District("Jesore").Exists())
}
