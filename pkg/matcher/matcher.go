// Package matcher joins a selected administrative unit against compiled
// location records.
package matcher

import (
	apiAdmin "agrimap/pkg/api/admin"
	apiSheet "agrimap/pkg/api/sheet"
	"agrimap/pkg/locnorm"
)

// Match returns the first record for the selected location. Province
// selections match aggregate rows of that province; ward selections must
// match both the ward and its parent province. No match is reported as false.
func Match(selected apiAdmin.SelectedLocation, hierarchy apiAdmin.Hierarchy, locations []apiSheet.LocationRecord) (apiSheet.LocationRecord, bool) {
	return NewIndex(hierarchy, locations).Match(selected)
}

type entry struct {
	province  string
	ward      string
	aggregate bool
}

// Index holds precomputed keys of a compiled dataset.
type Index struct {
	hierarchy apiAdmin.Hierarchy
	locations []apiSheet.LocationRecord
	keys      []entry
}

// NewIndex normalises the names of every record once.
func NewIndex(hierarchy apiAdmin.Hierarchy, locations []apiSheet.LocationRecord) *Index {
	keys := make([]entry, len(locations))
	for i, rec := range locations {
		keys[i] = entry{
			province:  locnorm.Normalize(rec.Province),
			ward:      locnorm.Normalize(rec.Ward),
			aggregate: locnorm.IsAggregate(rec.Ward),
		}
	}
	return &Index{hierarchy: hierarchy, locations: locations, keys: keys}
}

// Match implements the package-level Match over the indexed dataset.
func (ix *Index) Match(selected apiAdmin.SelectedLocation) (apiSheet.LocationRecord, bool) {
	switch selected.Type {
	case apiAdmin.LocationProvince:
		want := locnorm.Normalize(selected.Name)
		return ix.find(func(e entry) bool {
			return e.aggregate && e.province == want
		})

	case apiAdmin.LocationWard:
		parent, ok := ix.hierarchy.Province(selected.ProvinceCode)
		if !ok {
			return apiSheet.LocationRecord{}, false
		}
		wantProvince := locnorm.Normalize(parent.Name)
		wantWard := locnorm.Normalize(selected.Name)
		return ix.find(func(e entry) bool {
			return e.ward == wantWard && e.province == wantProvince
		})
	}
	return apiSheet.LocationRecord{}, false
}

func (ix *Index) find(pred func(entry) bool) (apiSheet.LocationRecord, bool) {
	for i, e := range ix.keys {
		if pred(e) {
			return ix.locations[i], true
		}
	}
	return apiSheet.LocationRecord{}, false
}
