package bdgeo

import "strings"

// Postcode is a lookup handle for a postal code. The zero value is an
// unresolved handle.
type Postcode struct {
	rec *PostcodeRecord
}

// Postcode resolves a postal code (e.g. "8710"). The code is matched
// exactly after trimming surrounding whitespace.
func (d *Dataset) Postcode(code string) Postcode {
	if pos, ok := d.postcodeIdx[strings.TrimSpace(code)]; ok {
		return Postcode{rec: &d.postcodes[pos]}
	}
	return Postcode{}
}

// NewPostcode resolves a postal code against the shared default
// dataset.
func NewPostcode(code string) Postcode {
	d, err := Default()
	if err != nil {
		return Postcode{}
	}
	return d.Postcode(code)
}

// FindPostcode returns the full record for a postal code, with an
// explicit found flag.
func (d *Dataset) FindPostcode(code string) (PostcodeRecord, bool) {
	if pos, ok := d.postcodeIdx[strings.TrimSpace(code)]; ok {
		return d.postcodes[pos], true
	}
	return PostcodeRecord{}, false
}

// PostcodeList returns all postal codes in dataset order.
func (d *Dataset) PostcodeList() []string {
	codes := make([]string, len(d.postcodes))
	for i, rec := range d.postcodes {
		codes[i] = rec.Postcode
	}
	return codes
}

// Exists reports whether the lookup found a postcode on record.
func (pc Postcode) Exists() bool { return pc.rec != nil }

// Code returns the postal code string.
func (pc Postcode) Code() string {
	if pc.rec == nil {
		return ""
	}
	return pc.rec.Postcode
}

// Name returns the post office area name, Bangla when bn is true.
func (pc Postcode) Name(bn bool) string {
	if pc.rec == nil {
		return ""
	}
	if bn {
		return pc.rec.BnName
	}
	return pc.rec.Name
}

// Upazila returns the upazila the code belongs to.
func (pc Postcode) Upazila(bn bool) string {
	if pc.rec == nil {
		return ""
	}
	if bn {
		return pc.rec.BnUpazilaName
	}
	return pc.rec.UpazilaName
}

// District returns the district the code belongs to.
func (pc Postcode) District(bn bool) string {
	if pc.rec == nil {
		return ""
	}
	if bn {
		return pc.rec.BnDistrictName
	}
	return pc.rec.DistrictName
}

// Division returns the division the code belongs to.
func (pc Postcode) Division(bn bool) string {
	if pc.rec == nil {
		return ""
	}
	if bn {
		return pc.rec.BnDivisionName
	}
	return pc.rec.DivisionName
}

// FullAddress composes the address chain in descending hierarchy
// order with the code appended last: area, upazila, district,
// division, postcode, joined by ", ".
func (pc Postcode) FullAddress(bn bool) string {
	if pc.rec == nil {
		return ""
	}
	parts := []string{
		pc.Name(bn),
		pc.Upazila(bn),
		pc.District(bn),
		pc.Division(bn),
		pc.rec.Postcode,
	}
	return strings.Join(parts, addressSeparator)
}

// Record returns a copy of the full underlying record.
func (pc Postcode) Record() PostcodeRecord {
	if pc.rec == nil {
		return PostcodeRecord{}
	}
	return *pc.rec
}
