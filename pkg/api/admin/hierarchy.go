package admin

import (
	"bytes"
	"encoding/json"
)

// Code is an administrative unit code. Source files carry it either as a
// JSON string or as a JSON number.
type Code string

// UnmarshalJSON implements json.Unmarshaler.
func (c *Code) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	*c = Code(text)
	return nil
}

func (c Code) String() string { return string(c) }

// Figure is a population or area figure, kept as the decimal text it was
// written with. Merged GeoJSON properties carry it as a string or a number.
type Figure string

// UnmarshalJSON implements json.Unmarshaler.
func (f *Figure) UnmarshalJSON(data []byte) error {
	text, err := scalarText(data)
	if err != nil {
		return err
	}
	*f = Figure(text)
	return nil
}

// scalarText returns a JSON string, number or null as text.
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

type Ward struct {
	Name         string `json:"name"`
	Code         Code   `json:"code"`
	ProvinceCode Code   `json:"provinceCode"`
	Population   Figure `json:"danSo,omitempty"`
	Area         Figure `json:"dienTich,omitempty"`
}

type Province struct {
	Name       string `json:"name"`
	Code       Code   `json:"code"`
	Wards      []Ward `json:"wards"`
	Population Figure `json:"danSo,omitempty"`
	Area       Figure `json:"dienTich,omitempty"`
}

// Hierarchy is the ordered province list of the two-level administrative tree.
type Hierarchy []Province

// Province returns the first province with the given code.
func (h Hierarchy) Province(code Code) (Province, bool) {
	for _, p := range h {
		if p.Code == code {
			return p, true
		}
	}
	return Province{}, false
}

// Ward returns the ward with the given code inside the given province.
func (h Hierarchy) Ward(provinceCode, wardCode Code) (Ward, bool) {
	p, ok := h.Province(provinceCode)
	if !ok {
		return Ward{}, false
	}
	for _, w := range p.Wards {
		if w.Code == wardCode {
			return w, true
		}
	}
	return Ward{}, false
}
