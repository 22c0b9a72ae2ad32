package bdgeo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestDivision(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want string
	}{
		{"dhaka city", 23.7808, 90.4219, "Dhaka"},
		{"sylhet city", 24.9, 91.87, "Sylhet"},
		{"khulna city", 22.82, 89.55, "Khulna"},
		{"teknaf coast", 20.86, 92.3, "Chattogram"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dv := d.NearestDivision(tt.lat, tt.lng)
			require.True(t, dv.Exists())
			assert.Equal(t, tt.want, dv.Name(false))
		})
	}
}

func TestNearestDistrict(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	dist := d.NearestDistrict(26.0, 88.47)
	require.True(t, dist.Exists())
	assert.Equal(t, "Thakurgaon", dist.Name(false))

	// Records without coordinates are skipped, never matched at (0,0).
	equator := d.NearestDistrict(0.1, 0.1)
	if equator.Exists() {
		lat, lng := equator.LatLng()
		assert.False(t, lat == 0 && lng == 0)
	}
}

func TestNearestRejectsInvalidCoordinates(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	assert.False(t, d.NearestDivision(math.NaN(), 90).Exists())
	assert.False(t, d.NearestDivision(23, math.Inf(1)).Exists())
	assert.False(t, d.NearestDistrict(math.Inf(-1), math.NaN()).Exists())
}
