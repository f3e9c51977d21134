package catalog

import (
	"strings"

	apiSheet "agrimap/pkg/api/sheet"
)

// Builder assembles a ProductCatalog from one of two sources.
type Builder struct {
	nameIdx        int
	legacyImageIdx int
	newImageIdx    int
	priceIdx       int
	excluded       []string
	imageLink      func(string) string
}

// NewBuilder creates a builder for product tables laid out as
// [name, legacyImageUrl, newImageUrl, price].
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		nameIdx:        0,
		legacyImageIdx: 1,
		newImageIdx:    2,
		priceIdx:       3,
		excluded:       []string{"Cây", "Tỉnh", "Xã"},
		imageLink:      apiSheet.OrAbsent,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// FromProductTable builds the catalog from product table rows. Row 0 is the
// table header and is skipped, as are rows without a name. The first row for
// a name wins.
func (b *Builder) FromProductTable(rows [][]string) apiSheet.ProductCatalog {
	out := make(apiSheet.ProductCatalog)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := apiSheet.Cell(row, b.nameIdx)
		if name == "" {
			continue
		}
		if _, ok := out[name]; ok {
			continue
		}
		image := apiSheet.Cell(row, b.newImageIdx)
		if apiSheet.IsAbsent(image) {
			image = apiSheet.Cell(row, b.legacyImageIdx)
		}
		out[name] = apiSheet.ProductInfo{
			Image: b.imageLink(image),
			Price: apiSheet.OrAbsent(apiSheet.Cell(row, b.priceIdx)),
		}
	}
	return out
}

// FromImageRow builds the catalog from the legacy header layout where the
// image URL of each product sits in imageRow at the product's column.
// isMetric reports metric captions that are not products.
func (b *Builder) FromImageRow(imageRow, productRow []string, isMetric func(string) bool) apiSheet.ProductCatalog {
	out := make(apiSheet.ProductCatalog)
	width := max(len(imageRow), len(productRow))
	for i := apiSheet.FirstDataCol; i < width; i++ {
		name := apiSheet.Cell(productRow, i)
		if name == "" || b.isExcluded(name) || (isMetric != nil && isMetric(name)) {
			continue
		}
		image := apiSheet.Cell(imageRow, i)
		if apiSheet.IsAbsent(image) {
			continue
		}
		if prev, ok := out[name]; ok && !apiSheet.IsAbsent(prev.Image) {
			continue
		}
		out[name] = apiSheet.ProductInfo{Image: b.imageLink(image), Price: apiSheet.Absent}
	}
	return out
}

func (b *Builder) isExcluded(name string) bool {
	for _, e := range b.excluded {
		if strings.EqualFold(e, name) {
			return true
		}
	}
	return false
}
