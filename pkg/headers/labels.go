package headers

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MetricLabel identifies a metric column by its full label or a key substring.
type MetricLabel struct {
	Label string
	Key   string
}

// Labels are the literal header texts the indexer recognises.
type Labels struct {
	// GroupLabel is the crop-row caption of the reserved columns; it never names a crop.
	GroupLabel  string
	TotalToken  string
	Placeholder string
	Area        MetricLabel
	Opportunity MetricLabel
}

// DefaultLabels matches the layout of the crop-area sheet.
var DefaultLabels = Labels{
	GroupLabel:  "Cây",
	TotalToken:  "total",
	Placeholder: "(blank)",
	Area:        MetricLabel{Label: "Diện tích thực tế", Key: "diện tích"},
	Opportunity: MetricLabel{Label: "Cơ hội thị trường", Key: "cơ hội"},
}

func fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// Matches reports whether cell equals the label or contains the key,
// ignoring case.
func (m MetricLabel) Matches(cell string) bool {
	c := fold(cell)
	if c == "" {
		return false
	}
	if m.Label != "" && c == fold(m.Label) {
		return true
	}
	return m.Key != "" && strings.Contains(c, fold(m.Key))
}

// Contains reports whether a header name mentions the metric anywhere.
// Carried crop/stage names are checked this way by the fallback policy.
func (m MetricLabel) Contains(name string) bool {
	n := fold(name)
	if n == "" {
		return false
	}
	return (m.Label != "" && strings.Contains(n, fold(m.Label))) ||
		(m.Key != "" && strings.Contains(n, fold(m.Key)))
}

// IsTotal reports whether a raw header name carries the total marker.
func (l Labels) IsTotal(raw string) bool {
	return l.TotalToken != "" && strings.Contains(fold(raw), fold(l.TotalToken))
}
