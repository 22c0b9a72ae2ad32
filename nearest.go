package bdgeo

import (
	"math"

	"github.com/golang/geo/s2"
)

// NearestDivision returns the division whose on-record coordinates
// are closest to the given point on the sphere. NaN or infinite
// coordinates yield an unresolved handle. The tables are small, so a
// linear scan over the records is sufficient.
func (d *Dataset) NearestDivision(lat, lng float64) Division {
	pos := nearestRecord(lat, lng, len(d.divisions), func(i int) (float64, float64) {
		return d.divisions[i].Lat, d.divisions[i].Lng
	})
	if pos < 0 {
		return Division{}
	}
	return Division{rec: &d.divisions[pos]}
}

// NearestDistrict returns the district whose on-record coordinates
// are closest to the given point. Districts without coordinates are
// skipped.
func (d *Dataset) NearestDistrict(lat, lng float64) District {
	pos := nearestRecord(lat, lng, len(d.districts), func(i int) (float64, float64) {
		return d.districts[i].Lat, d.districts[i].Lng
	})
	if pos < 0 {
		return District{}
	}
	return District{rec: &d.districts[pos]}
}

// nearestRecord scans n records for the smallest great-circle
// distance to (lat, lng). Records at (0,0) have no coordinates on
// record and are skipped. Returns -1 when nothing qualifies.
func nearestRecord(lat, lng float64, n int, coords func(i int) (float64, float64)) int {
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return -1
	}

	query := s2.LatLngFromDegrees(lat, lng)
	best := -1
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		rLat, rLng := coords(i)
		if rLat == 0 && rLng == 0 {
			continue
		}
		dist := float64(query.Distance(s2.LatLngFromDegrees(rLat, rLng)))
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}
