package bdgeo

import "strings"

// addressSeparator joins the components of a full address. The same
// separator is used for English and Bangla addresses.
const addressSeparator = ", "

// Union is a lookup handle for a union parishad, the lowest tier of
// the hierarchy. The zero value is an unresolved handle.
type Union struct {
	rec *UnionRecord
}

// Union resolves a union by English or Bangla name. Union names are
// not unique across upazilas; the first record in dataset order wins.
func (d *Dataset) Union(name string) Union {
	if pos, ok := d.unionIdx.lookup(name); ok {
		return Union{rec: &d.unions[pos]}
	}
	return Union{}
}

// NewUnion resolves a union against the shared default dataset.
func NewUnion(name string) Union {
	d, err := Default()
	if err != nil {
		return Union{}
	}
	return d.Union(name)
}

// FindUnion returns the full record for a union name, with an
// explicit found flag.
func (d *Dataset) FindUnion(name string) (UnionRecord, bool) {
	if pos, ok := d.unionIdx.lookup(name); ok {
		return d.unions[pos], true
	}
	return UnionRecord{}, false
}

// UnionNames returns all union names in dataset order.
func (d *Dataset) UnionNames(bn bool) []string {
	names := make([]string, len(d.unions))
	for i, rec := range d.unions {
		if bn {
			names[i] = rec.BnName
		} else {
			names[i] = rec.Name
		}
	}
	return names
}

// Exists reports whether the lookup found a union on record.
func (un Union) Exists() bool { return un.rec != nil }

// Name returns the union name, Bangla when bn is true.
func (un Union) Name(bn bool) string {
	if un.rec == nil {
		return ""
	}
	if bn {
		return un.rec.BnName
	}
	return un.rec.Name
}

// ID returns the record id, or 0 when unresolved.
func (un Union) ID() int {
	if un.rec == nil {
		return 0
	}
	return un.rec.ID
}

// Upazila returns the parent upazila name.
func (un Union) Upazila(bn bool) string {
	if un.rec == nil {
		return ""
	}
	if bn {
		return un.rec.BnUpazilaName
	}
	return un.rec.UpazilaName
}

// District returns the ancestor district name.
func (un Union) District(bn bool) string {
	if un.rec == nil {
		return ""
	}
	if bn {
		return un.rec.BnDistrictName
	}
	return un.rec.DistrictName
}

// Division returns the ancestor division name.
func (un Union) Division(bn bool) string {
	if un.rec == nil {
		return ""
	}
	if bn {
		return un.rec.BnDivisionName
	}
	return un.rec.DivisionName
}

// FullAddress composes the address chain in descending hierarchy
// order: union, upazila, district, division, joined by ", ".
func (un Union) FullAddress(bn bool) string {
	if un.rec == nil {
		return ""
	}
	parts := []string{
		un.Name(bn),
		un.Upazila(bn),
		un.District(bn),
		un.Division(bn),
	}
	return strings.Join(parts, addressSeparator)
}

// Record returns a copy of the full underlying record.
func (un Union) Record() UnionRecord {
	if un.rec == nil {
		return UnionRecord{}
	}
	return *un.rec
}
