package bdgeo

import "fmt"

// District is a lookup handle for a district. The zero value is an
// unresolved handle.
type District struct {
	rec *DistrictRecord
}

// District resolves a district by English or Bangla name.
func (d *Dataset) District(name string) District {
	if pos, ok := d.districtIdx.lookup(name); ok {
		return District{rec: &d.districts[pos]}
	}
	return District{}
}

// NewDistrict resolves a district against the shared default dataset.
func NewDistrict(name string) District {
	d, err := Default()
	if err != nil {
		return District{}
	}
	return d.District(name)
}

// FindDistrict returns the full record for a district name, with an
// explicit found flag.
func (d *Dataset) FindDistrict(name string) (DistrictRecord, bool) {
	if pos, ok := d.districtIdx.lookup(name); ok {
		return d.districts[pos], true
	}
	return DistrictRecord{}, false
}

// DistrictNames returns all district names in dataset order.
func (d *Dataset) DistrictNames(bn bool) []string {
	names := make([]string, len(d.districts))
	for i, rec := range d.districts {
		if bn {
			names[i] = rec.BnName
		} else {
			names[i] = rec.Name
		}
	}
	return names
}

// Exists reports whether the lookup found a district on record.
func (dt District) Exists() bool { return dt.rec != nil }

// Name returns the district name, Bangla when bn is true.
func (dt District) Name(bn bool) string {
	if dt.rec == nil {
		return ""
	}
	if bn {
		return dt.rec.BnName
	}
	return dt.rec.Name
}

// ID returns the record id, or 0 when unresolved.
func (dt District) ID() int {
	if dt.rec == nil {
		return 0
	}
	return dt.rec.ID
}

// Division returns the parent division name.
func (dt District) Division(bn bool) string {
	if dt.rec == nil {
		return ""
	}
	if bn {
		return dt.rec.BnDivisionName
	}
	return dt.rec.DivisionName
}

// Upazilas returns the names of the upazilas in this district, in
// record order.
func (dt District) Upazilas() []string {
	if dt.rec == nil {
		return nil
	}
	return dt.rec.Upazilas
}

// UpazilaCount returns the number of upazilas in this district.
func (dt District) UpazilaCount() int {
	if dt.rec == nil {
		return 0
	}
	if dt.rec.UpazilasCount > 0 {
		return dt.rec.UpazilasCount
	}
	return len(dt.rec.Upazilas)
}

// Area returns the district area in square kilometres.
func (dt District) Area() float64 {
	if dt.rec == nil {
		return 0
	}
	return dt.rec.AreaKm2
}

// AreaSqMiles returns the district area in square miles.
func (dt District) AreaSqMiles() float64 {
	return dt.Area() * sqMilesPerKm2
}

// Population returns the on-record population count.
func (dt District) Population() int64 {
	if dt.rec == nil {
		return 0
	}
	return dt.rec.Population
}

// PopulationYear returns the census year of the population figure.
func (dt District) PopulationYear() int {
	if dt.rec == nil {
		return 0
	}
	return dt.rec.PopulationYear
}

// Headquarter returns the administrative headquarter name.
func (dt District) Headquarter(bn bool) string {
	if dt.rec == nil {
		return ""
	}
	if bn {
		return dt.rec.BnHeadquarter
	}
	return dt.rec.Headquarter
}

// LatLng returns the district coordinates in degrees.
func (dt District) LatLng() (float64, float64) {
	if dt.rec == nil {
		return 0, 0
	}
	return dt.rec.Lat, dt.rec.Lng
}

// MapString returns a "map:lat,long" marker string.
func (dt District) MapString() string {
	if dt.rec == nil {
		return ""
	}
	return fmt.Sprintf("map:%g,%g", dt.rec.Lat, dt.rec.Lng)
}

// Established returns the establishment date as YYYY-MM-DD.
func (dt District) Established() string {
	if dt.rec == nil {
		return ""
	}
	return dt.rec.Established
}

// Website returns the official website URL.
func (dt District) Website() string {
	if dt.rec == nil {
		return ""
	}
	return dt.rec.Website
}

// Record returns a copy of the full underlying record.
func (dt District) Record() DistrictRecord {
	if dt.rec == nil {
		return DistrictRecord{}
	}
	return *dt.rec
}
