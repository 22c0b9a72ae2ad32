package bdgeo

import "fmt"

// Upazila is a lookup handle for an upazila (sub-district). The zero
// value is an unresolved handle.
type Upazila struct {
	rec *UpazilaRecord
}

// Upazila resolves an upazila by English or Bangla name.
func (d *Dataset) Upazila(name string) Upazila {
	if pos, ok := d.upazilaIdx.lookup(name); ok {
		return Upazila{rec: &d.upazilas[pos]}
	}
	return Upazila{}
}

// NewUpazila resolves an upazila against the shared default dataset.
func NewUpazila(name string) Upazila {
	d, err := Default()
	if err != nil {
		return Upazila{}
	}
	return d.Upazila(name)
}

// FindUpazila returns the full record for an upazila name, with an
// explicit found flag.
func (d *Dataset) FindUpazila(name string) (UpazilaRecord, bool) {
	if pos, ok := d.upazilaIdx.lookup(name); ok {
		return d.upazilas[pos], true
	}
	return UpazilaRecord{}, false
}

// UpazilaNames returns all upazila names in dataset order.
func (d *Dataset) UpazilaNames(bn bool) []string {
	names := make([]string, len(d.upazilas))
	for i, rec := range d.upazilas {
		if bn {
			names[i] = rec.BnName
		} else {
			names[i] = rec.Name
		}
	}
	return names
}

// Exists reports whether the lookup found an upazila on record.
func (up Upazila) Exists() bool { return up.rec != nil }

// Name returns the upazila name, Bangla when bn is true.
func (up Upazila) Name(bn bool) string {
	if up.rec == nil {
		return ""
	}
	if bn {
		return up.rec.BnName
	}
	return up.rec.Name
}

// ID returns the record id, or 0 when unresolved.
func (up Upazila) ID() int {
	if up.rec == nil {
		return 0
	}
	return up.rec.ID
}

// District returns the parent district name.
func (up Upazila) District(bn bool) string {
	if up.rec == nil {
		return ""
	}
	if bn {
		return up.rec.BnDistrictName
	}
	return up.rec.DistrictName
}

// Division returns the grandparent division name.
func (up Upazila) Division(bn bool) string {
	if up.rec == nil {
		return ""
	}
	if bn {
		return up.rec.BnDivisionName
	}
	return up.rec.DivisionName
}

// Unions returns the names of the unions in this upazila, in record
// order.
func (up Upazila) Unions() []string {
	if up.rec == nil {
		return nil
	}
	return up.rec.Unions
}

// UnionCount returns the number of unions in this upazila.
func (up Upazila) UnionCount() int {
	if up.rec == nil {
		return 0
	}
	if up.rec.UnionsCount > 0 {
		return up.rec.UnionsCount
	}
	return len(up.rec.Unions)
}

// Area returns the upazila area in square kilometres.
func (up Upazila) Area() float64 {
	if up.rec == nil {
		return 0
	}
	return up.rec.AreaKm2
}

// AreaSqMiles returns the upazila area in square miles.
func (up Upazila) AreaSqMiles() float64 {
	return up.Area() * sqMilesPerKm2
}

// Population returns the on-record population count.
func (up Upazila) Population() int64 {
	if up.rec == nil {
		return 0
	}
	return up.rec.Population
}

// PopulationYear returns the census year of the population figure.
func (up Upazila) PopulationYear() int {
	if up.rec == nil {
		return 0
	}
	return up.rec.PopulationYear
}

// Headquarter returns the administrative headquarter name.
func (up Upazila) Headquarter() string {
	if up.rec == nil {
		return ""
	}
	return up.rec.Headquarter
}

// LatLng returns the upazila coordinates in degrees.
func (up Upazila) LatLng() (float64, float64) {
	if up.rec == nil {
		return 0, 0
	}
	return up.rec.Lat, up.rec.Lng
}

// MapString returns a "map:lat,long" marker string.
func (up Upazila) MapString() string {
	if up.rec == nil {
		return ""
	}
	return fmt.Sprintf("map:%g,%g", up.rec.Lat, up.rec.Lng)
}

// Record returns a copy of the full underlying record.
func (up Upazila) Record() UpazilaRecord {
	if up.rec == nil {
		return UpazilaRecord{}
	}
	return *up.rec
}
