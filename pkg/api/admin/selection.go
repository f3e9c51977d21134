package admin

import (
	"fmt"
	"strings"
)

type LocationType int

const (
	LocationNone LocationType = iota
	LocationProvince
	LocationWard
)

var _ fmt.Stringer = (*LocationType)(nil)

// String returns the wire name of the location type
func (t LocationType) String() string {
	switch t {
	case LocationProvince:
		return "province"
	case LocationWard:
		return "ward"
	default:
		return ""
	}
}

// ParseLocationType parses a wire name and returns the corresponding LocationType
func ParseLocationType(s string) LocationType {
	if strings.EqualFold(s, "province") {
		return LocationProvince
	} else if strings.EqualFold(s, "ward") {
		return LocationWard
	}
	return LocationNone
}

// SelectedLocation is the entity picked on the map or the location list.
type SelectedLocation struct {
	Type         LocationType
	ProvinceCode Code
	WardCode     Code
	Name         string
}

// SelectProvince builds a province selection from the hierarchy.
func (h Hierarchy) SelectProvince(code Code) (SelectedLocation, bool) {
	p, ok := h.Province(code)
	if !ok {
		return SelectedLocation{}, false
	}
	return SelectedLocation{Type: LocationProvince, ProvinceCode: p.Code, Name: p.Name}, true
}

// SelectWard builds a ward selection from the hierarchy.
func (h Hierarchy) SelectWard(provinceCode, wardCode Code) (SelectedLocation, bool) {
	w, ok := h.Ward(provinceCode, wardCode)
	if !ok {
		return SelectedLocation{}, false
	}
	return SelectedLocation{
		Type:         LocationWard,
		ProvinceCode: provinceCode,
		WardCode:     w.Code,
		Name:         w.Name,
	}, true
}
