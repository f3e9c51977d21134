package sheet

// Header row positions and reserved columns of the raw matrix.
const (
	CropRow = iota
	StageRow
	PestRow
	ProductRow
	HeaderRows
)

const (
	ProvinceCol = iota
	WardCol
	TotalAreaCol
	OpportunityCol
	FirstDataCol
)

// Cell returns the trimmed cell at idx, or "" when the row is too short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return trim(row[idx])
}
