package sheet

import "strings"

// Absent is the value stored in metric and image fields that received no data.
const Absent = "0"

// IsAbsent reports whether a cell value means "no data".
// Both the empty string and the literal "0" count as absent.
func IsAbsent(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == Absent
}

// OrAbsent returns v trimmed, or Absent when v carries no data.
func OrAbsent(v string) string {
	if IsAbsent(v) {
		return Absent
	}
	return strings.TrimSpace(v)
}

// ColumnDescriptor describes the role of one data column.
type ColumnDescriptor struct {
	ColIndex      int
	CropName      string
	StageName     string
	PestName      string
	ProductName   string
	IsCropTotal   bool
	IsStageTotal  bool
	IsArea        bool
	IsOpportunity bool
}

// IsMetric reports whether the column carries an area or opportunity figure
// rather than a product application.
func (c ColumnDescriptor) IsMetric() bool {
	return c.IsArea || c.IsOpportunity
}

// MedicineEntry is one product application inside a growth stage.
type MedicineEntry struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Pest     string `json:"pest,omitempty"`
	ImageURL string `json:"imageUrl"`
}

type StageRecord struct {
	Name        string          `json:"name"`
	TotalArea   string          `json:"totalArea"`
	Opportunity string          `json:"opportunity"`
	Medicines   []MedicineEntry `json:"medicines"`
	Pests       []string        `json:"pests"`
}

type CropRecord struct {
	Name        string        `json:"name"`
	TotalArea   string        `json:"totalArea"`
	Opportunity string        `json:"opportunity"`
	Stages      []StageRecord `json:"stages"`
}

// LocationRecord is the compiled data of one spreadsheet row.
type LocationRecord struct {
	Province    string       `json:"province"`
	Ward        string       `json:"ward"`
	TotalArea   string       `json:"totalArea"`
	Opportunity string       `json:"opportunity"`
	Crops       []CropRecord `json:"crops"`
}

// Result is the compiled dataset handed to rendering layers.
type Result struct {
	Locations      []LocationRecord `json:"locations"`
	ProductCatalog ProductCatalog   `json:"productCatalog"`
}

func trim(s string) string { return strings.TrimSpace(s) }
