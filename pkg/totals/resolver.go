package totals

import (
	"log/slog"
	"regexp"
	"strings"

	apiSheet "agrimap/pkg/api/sheet"

	"golang.org/x/text/unicode/norm"
)

// DefaultToken is the marker word of aggregate rows.
const DefaultToken = "total"

// Totals holds province-level aggregates keyed by the NFC form of the
// province display name.
type Totals struct {
	TotalArea   map[string]string
	Opportunity map[string]string
}

// Override returns the aggregate figures for province, falling back to the
// given per-row figures when no aggregate was recorded.
func (t Totals) Override(province, area, opportunity string) (string, string) {
	key := provinceKey(province)
	if v, ok := t.TotalArea[key]; ok {
		area = v
	}
	if v, ok := t.Opportunity[key]; ok {
		opportunity = v
	}
	return area, opportunity
}

func provinceKey(province string) string {
	return norm.NFC.String(strings.TrimSpace(province))
}

// Resolver recognises aggregate marker rows.
type Resolver struct {
	token    string
	trailing *regexp.Regexp
}

// NewResolver creates a resolver for the given marker token; an empty token
// selects DefaultToken.
func NewResolver(token string) *Resolver {
	token = norm.NFC.String(strings.TrimSpace(token))
	if token == "" {
		token = DefaultToken
	}
	return &Resolver{
		token:    token,
		trailing: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token) + `$`),
	}
}

// MarkerKey reports whether row is a province-total marker row and returns
// the province key it aggregates. Cells are matched in NFC form.
func (r *Resolver) MarkerKey(row []string) (string, bool) {
	province := provinceKey(apiSheet.Cell(row, apiSheet.ProvinceCol))
	ward := norm.NFC.String(apiSheet.Cell(row, apiSheet.WardCol))

	if loc := r.trailing.FindStringIndex(province); loc != nil {
		return strings.TrimSpace(province[:loc[0]]), true
	}
	if strings.EqualFold(ward, r.token) {
		return province, true
	}
	return "", false
}

// Resolve scans every data row and collects the aggregate overrides. Absent
// aggregate cells are not recorded; a later marker row for the same province
// replaces an earlier one.
func (r *Resolver) Resolve(rows [][]string) Totals {
	t := Totals{
		TotalArea:   make(map[string]string),
		Opportunity: make(map[string]string),
	}
	for _, row := range rows {
		key, ok := r.MarkerKey(row)
		if !ok {
			continue
		}
		if v := apiSheet.Cell(row, apiSheet.TotalAreaCol); !apiSheet.IsAbsent(v) {
			t.TotalArea[key] = v
		}
		if v := apiSheet.Cell(row, apiSheet.OpportunityCol); !apiSheet.IsAbsent(v) {
			t.Opportunity[key] = v
		}
		slog.Debug("Province total row", slog.String("province", key))
	}
	return t
}
