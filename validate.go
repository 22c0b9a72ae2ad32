package bdgeo

import (
	"fmt"
	"strings"
)

// Count floors for the embedded dataset. Bangladesh has 8 divisions
// and 64 districts; the lower tiers ship a growing subset.
const (
	wantDivisionCount = 8
	minDistrictCount  = 64
	minUpazilaCount   = 10
	minUnionCount     = 10
	minPostcodeCount  = 10
)

// knownLookup probes one entity lookup during validation.
type knownLookup struct {
	query string
	want  string
}

var knownDivisions = []knownLookup{
	{"Dhaka", "Dhaka"},
	{"ঢাকা", "Dhaka"},
	{"barishal", "Barishal"},
	{"Sylhet", "Sylhet"},
}

var knownPostcodes = []knownLookup{
	{"8710", "Amtali"},
	{"1000", "Dhaka Sadar"},
}

// ValidateData loads the dataset and checks record counts, known
// lookups and hierarchy consistency in both directions. It is used by
// cmd/validate-data before a dataset update is committed.
func ValidateData(opts ...Option) error {
	d, err := New(opts...)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	if got := len(d.divisions); got != wantDivisionCount {
		return fmt.Errorf("division count: got %d, want %d", got, wantDivisionCount)
	}
	if got := len(d.districts); got < minDistrictCount {
		return fmt.Errorf("district count too low: got %d, want >= %d", got, minDistrictCount)
	}
	if got := len(d.upazilas); got < minUpazilaCount {
		return fmt.Errorf("upazila count too low: got %d, want >= %d", got, minUpazilaCount)
	}
	if got := len(d.unions); got < minUnionCount {
		return fmt.Errorf("union count too low: got %d, want >= %d", got, minUnionCount)
	}
	if got := len(d.postcodes); got < minPostcodeCount {
		return fmt.Errorf("postcode count too low: got %d, want >= %d", got, minPostcodeCount)
	}

	for _, k := range knownDivisions {
		dv := d.Division(k.query)
		if !dv.Exists() {
			return fmt.Errorf("division %q not found", k.query)
		}
		if dv.Name(false) != k.want {
			return fmt.Errorf("division %q resolved to %q, want %q", k.query, dv.Name(false), k.want)
		}
	}
	for _, k := range knownPostcodes {
		pc := d.Postcode(k.query)
		if !pc.Exists() {
			return fmt.Errorf("postcode %q not found", k.query)
		}
		if pc.Upazila(false) != k.want {
			return fmt.Errorf("postcode %q upazila = %q, want %q", k.query, pc.Upazila(false), k.want)
		}
	}

	if err := d.checkHierarchy(); err != nil {
		return err
	}
	return nil
}

// checkHierarchy verifies parent references point at real records and
// that parents list their children back.
func (d *Dataset) checkHierarchy() error {
	for _, dist := range d.districts {
		dv := d.Division(dist.DivisionName)
		if !dv.Exists() {
			return fmt.Errorf("district %q references unknown division %q", dist.Name, dist.DivisionName)
		}
		if !containsName(dv.Districts(), dist.Name) {
			return fmt.Errorf("division %q does not list district %q", dv.Name(false), dist.Name)
		}
	}

	for _, dv := range d.divisions {
		for _, name := range dv.Districts {
			dist := d.District(name)
			if !dist.Exists() {
				return fmt.Errorf("division %q lists unknown district %q", dv.Name, name)
			}
			if !strings.EqualFold(dist.Division(false), dv.Name) {
				return fmt.Errorf("district %q points at division %q, listed under %q",
					name, dist.Division(false), dv.Name)
			}
		}
	}

	for _, up := range d.upazilas {
		dist := d.District(up.DistrictName)
		if !dist.Exists() {
			return fmt.Errorf("upazila %q references unknown district %q", up.Name, up.DistrictName)
		}
		if !containsName(dist.Upazilas(), up.Name) {
			return fmt.Errorf("district %q does not list upazila %q", dist.Name(false), up.Name)
		}
		if !strings.EqualFold(dist.Division(false), up.DivisionName) {
			return fmt.Errorf("upazila %q division %q disagrees with district %q division %q",
				up.Name, up.DivisionName, dist.Name(false), dist.Division(false))
		}
	}

	for _, un := range d.unions {
		up := d.Upazila(un.UpazilaName)
		if !up.Exists() {
			return fmt.Errorf("union %q references unknown upazila %q", un.Name, un.UpazilaName)
		}
		if !containsName(up.Unions(), un.Name) {
			return fmt.Errorf("upazila %q does not list union %q", up.Name(false), un.Name)
		}
	}

	for _, pc := range d.postcodes {
		if !d.Division(pc.DivisionName).Exists() {
			return fmt.Errorf("postcode %s references unknown division %q", pc.Postcode, pc.DivisionName)
		}
		if !d.District(pc.DistrictName).Exists() {
			return fmt.Errorf("postcode %s references unknown district %q", pc.Postcode, pc.DistrictName)
		}
	}
	return nil
}

func containsName(names []string, want string) bool {
	for _, n := range names {
		if strings.EqualFold(n, want) {
			return true
		}
	}
	return false
}
