package bdgeo

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps the edit distance so a typo query cannot
// degenerate into matching most of a table.
const maxSuggestDistance = 3

// maxSuggestInputLen truncates pathological inputs before distance
// computation.
const maxSuggestInputLen = 256

// suggestion pairs a candidate name with its edit distance.
type suggestion struct {
	name string
	dist int
}

// suggestNames scans an English name index for entries within maxDist
// edits of name. Results are sorted by distance, then alphabetically.
// The lookup constructors stay exact-match; this is a separate
// convenience for "did you mean" flows.
func suggestNames(idx map[string]int, records func(pos int) string, name string, maxDist int) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || maxDist <= 0 {
		return nil
	}
	if maxDist > maxSuggestDistance {
		maxDist = maxSuggestDistance
	}
	if runes := []rune(name); len(runes) > maxSuggestInputLen {
		name = string(runes[:maxSuggestInputLen])
	}

	var found []suggestion
	for key, pos := range idx {
		if dist := levenshtein.ComputeDistance(name, key); dist <= maxDist {
			found = append(found, suggestion{name: records(pos), dist: dist})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].dist != found[j].dist {
			return found[i].dist < found[j].dist
		}
		return found[i].name < found[j].name
	})

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}
	return out
}

// SuggestDivisions returns division names within maxDist edits of
// name, best matches first.
func (d *Dataset) SuggestDivisions(name string, maxDist int) []string {
	return suggestNames(d.divisionIdx.en, func(pos int) string {
		return d.divisions[pos].Name
	}, name, maxDist)
}

// SuggestDistricts returns district names within maxDist edits of
// name, best matches first.
func (d *Dataset) SuggestDistricts(name string, maxDist int) []string {
	return suggestNames(d.districtIdx.en, func(pos int) string {
		return d.districts[pos].Name
	}, name, maxDist)
}

// SuggestUpazilas returns upazila names within maxDist edits of name,
// best matches first.
func (d *Dataset) SuggestUpazilas(name string, maxDist int) []string {
	return suggestNames(d.upazilaIdx.en, func(pos int) string {
		return d.upazilas[pos].Name
	}, name, maxDist)
}

// SuggestUnions returns union names within maxDist edits of name,
// best matches first.
func (d *Dataset) SuggestUnions(name string, maxDist int) []string {
	return suggestNames(d.unionIdx.en, func(pos int) string {
		return d.unions[pos].Name
	}, name, maxDist)
}
