package headers

import (
	apiSheet "agrimap/pkg/api/sheet"
)

// Metric is the figure a metric column carries.
type Metric int

const (
	MetricNone Metric = iota
	MetricArea
	MetricOpportunity
)

// FallbackPolicy assigns a metric to a column that carries no explicit
// metric label. cropRaw and stageRaw are the carried raw header names.
// Returning MetricNone leaves the column unclassified.
type FallbackPolicy func(col apiSheet.ColumnDescriptor, cropRaw, stageRaw string, labels Labels) Metric

// TotalColumnFallback classifies a total column with a blank product cell as
// area, or as opportunity when the carried stage or crop name mentions the
// opportunity metric. Sheets observed so far leave the area label off their
// total columns; nothing else guarantees it.
func TotalColumnFallback(col apiSheet.ColumnDescriptor, cropRaw, stageRaw string, labels Labels) Metric {
	if col.ProductName != "" || !(col.IsCropTotal || col.IsStageTotal) {
		return MetricNone
	}
	if labels.Opportunity.Contains(stageRaw) || labels.Opportunity.Contains(cropRaw) {
		return MetricOpportunity
	}
	return MetricArea
}
