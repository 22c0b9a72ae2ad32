package bdgeo

import "fmt"

// Division is a lookup handle for one of the eight divisions. The
// zero value is an unresolved handle.
type Division struct {
	rec *DivisionRecord
}

// Division resolves a division by English or Bangla name.
// Construction never fails; check Exists before trusting accessors.
func (d *Dataset) Division(name string) Division {
	if pos, ok := d.divisionIdx.lookup(name); ok {
		return Division{rec: &d.divisions[pos]}
	}
	return Division{}
}

// NewDivision resolves a division against the shared default dataset.
// If the dataset cannot be loaded the handle is unresolved.
func NewDivision(name string) Division {
	d, err := Default()
	if err != nil {
		return Division{}
	}
	return d.Division(name)
}

// FindDivision returns the full record for a division name, with an
// explicit found flag for callers who prefer branching over sentinel
// values.
func (d *Dataset) FindDivision(name string) (DivisionRecord, bool) {
	if pos, ok := d.divisionIdx.lookup(name); ok {
		return d.divisions[pos], true
	}
	return DivisionRecord{}, false
}

// DivisionNames returns all division names in dataset order.
func (d *Dataset) DivisionNames(bn bool) []string {
	names := make([]string, len(d.divisions))
	for i, rec := range d.divisions {
		if bn {
			names[i] = rec.BnName
		} else {
			names[i] = rec.Name
		}
	}
	return names
}

// Exists reports whether the lookup found a division on record.
func (dv Division) Exists() bool { return dv.rec != nil }

// Name returns the division name, Bangla when bn is true.
func (dv Division) Name(bn bool) string {
	if dv.rec == nil {
		return ""
	}
	if bn {
		return dv.rec.BnName
	}
	return dv.rec.Name
}

// ID returns the record id, or 0 when unresolved.
func (dv Division) ID() int {
	if dv.rec == nil {
		return 0
	}
	return dv.rec.ID
}

// Districts returns the names of the districts in this division, in
// record order.
func (dv Division) Districts() []string {
	if dv.rec == nil {
		return nil
	}
	return dv.rec.Districts
}

// DistrictCount returns the number of districts in this division.
func (dv Division) DistrictCount() int {
	if dv.rec == nil {
		return 0
	}
	if dv.rec.DistrictsCount > 0 {
		return dv.rec.DistrictsCount
	}
	return len(dv.rec.Districts)
}

// Area returns the division area in square kilometres.
func (dv Division) Area() float64 {
	if dv.rec == nil {
		return 0
	}
	return dv.rec.AreaKm2
}

// AreaSqMiles returns the division area in square miles.
func (dv Division) AreaSqMiles() float64 {
	return dv.Area() * sqMilesPerKm2
}

// Population returns the on-record population count.
func (dv Division) Population() int64 {
	if dv.rec == nil {
		return 0
	}
	return dv.rec.Population
}

// PopulationYear returns the census year of the population figure.
func (dv Division) PopulationYear() int {
	if dv.rec == nil {
		return 0
	}
	return dv.rec.PopulationYear
}

// Headquarter returns the administrative headquarter name.
func (dv Division) Headquarter(bn bool) string {
	if dv.rec == nil {
		return ""
	}
	if bn {
		return dv.rec.BnHeadquarter
	}
	return dv.rec.Headquarter
}

// LatLng returns the division coordinates in degrees.
func (dv Division) LatLng() (float64, float64) {
	if dv.rec == nil {
		return 0, 0
	}
	return dv.rec.Lat, dv.rec.Lng
}

// MapString returns a "map:lat,long" marker string, understood by the
// terminal presenter of the published dataset tooling.
func (dv Division) MapString() string {
	if dv.rec == nil {
		return ""
	}
	return fmt.Sprintf("map:%g,%g", dv.rec.Lat, dv.rec.Lng)
}

// Established returns the establishment date as YYYY-MM-DD.
func (dv Division) Established() string {
	if dv.rec == nil {
		return ""
	}
	return dv.rec.Established
}

// Website returns the official website URL.
func (dv Division) Website() string {
	if dv.rec == nil {
		return ""
	}
	return dv.rec.Website
}

// Record returns a copy of the full underlying record. The zero
// record is returned when unresolved.
func (dv Division) Record() DivisionRecord {
	if dv.rec == nil {
		return DivisionRecord{}
	}
	return *dv.rec
}
