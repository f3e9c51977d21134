package headers

import (
	"regexp"
	"strings"
	"unicode/utf8"

	apiSheet "agrimap/pkg/api/sheet"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var spaceSquasher = regexp.MustCompile(`\s+`)

// Indexer turns the four header rows into column descriptors.
type Indexer struct {
	labels   Labels
	fallback FallbackPolicy
	imageRow bool
	trailing *regexp.Regexp
}

// NewIndexer creates an indexer with the default labels and the total-column
// fallback policy.
func NewIndexer(opts ...IndexerOption) (*Indexer, error) {
	ix := &Indexer{
		labels:   DefaultLabels,
		fallback: TotalColumnFallback,
	}
	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}
	ix.trailing = regexp.MustCompile(`(?i)(^|\s+)` + regexp.QuoteMeta(norm.NFC.String(ix.labels.TotalToken)) + `$`)
	return ix, nil
}

// Labels returns the header texts this indexer recognises.
func (ix *Indexer) Labels() Labels {
	return ix.labels
}

// DisplayName normalises a raw crop or stage header for grouping and display.
// The result is in NFC form.
func (ix *Indexer) DisplayName(raw string) string {
	s := spaceSquasher.ReplaceAllString(strings.TrimSpace(norm.NFC.String(raw)), " ")
	if s == "" || strings.EqualFold(s, ix.labels.Placeholder) {
		return ""
	}
	s = strings.TrimSpace(ix.trailing.ReplaceAllString(s, ""))
	if s == "" {
		return ""
	}
	return sentenceCase(s)
}

func sentenceCase(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Vietnamese).String(s[:size]) +
		cases.Lower(language.Vietnamese).String(s[size:])
}

// scan is the accumulator carried across columns.
type scan struct {
	cropRaw  string
	stageRaw string
}

func (s scan) step(cropCell, stageCell, groupLabel string) scan {
	if cropCell != "" && cropCell != groupLabel {
		s.cropRaw = cropCell
	}
	if stageCell != "" {
		s.stageRaw = stageCell
	}
	return s
}

// Index builds descriptors for every column from 4 up to the widest header
// row. Fewer than four rows yield no descriptors.
func (ix *Indexer) Index(header [][]string) []apiSheet.ColumnDescriptor {
	if len(header) < apiSheet.HeaderRows {
		return nil
	}
	crops := header[apiSheet.CropRow]
	stages := header[apiSheet.StageRow]
	pests := header[apiSheet.PestRow]
	products := header[apiSheet.ProductRow]

	width := max(len(crops), len(stages), len(pests), len(products))
	if width <= apiSheet.FirstDataCol {
		return nil
	}

	out := make([]apiSheet.ColumnDescriptor, 0, width-apiSheet.FirstDataCol)
	acc := scan{}
	for i := apiSheet.FirstDataCol; i < width; i++ {
		acc = acc.step(apiSheet.Cell(crops, i), apiSheet.Cell(stages, i), ix.labels.GroupLabel)
		out = append(out, ix.describe(i, acc, apiSheet.Cell(pests, i), apiSheet.Cell(products, i)))
	}
	return out
}

func (ix *Indexer) describe(i int, acc scan, pest, product string) apiSheet.ColumnDescriptor {
	col := apiSheet.ColumnDescriptor{
		ColIndex:      i,
		CropName:      ix.DisplayName(acc.cropRaw),
		StageName:     ix.DisplayName(acc.stageRaw),
		ProductName:   product,
		IsCropTotal:   ix.labels.IsTotal(acc.cropRaw),
		IsStageTotal:  ix.labels.IsTotal(acc.stageRaw),
		IsArea:        ix.labels.Area.Matches(product),
		IsOpportunity: ix.labels.Opportunity.Matches(product),
	}
	if !ix.imageRow {
		col.PestName = pest
	}
	if !col.IsMetric() && ix.fallback != nil {
		switch ix.fallback(col, acc.cropRaw, acc.stageRaw, ix.labels) {
		case MetricArea:
			col.IsArea = true
		case MetricOpportunity:
			col.IsOpportunity = true
		}
	}
	return col
}
