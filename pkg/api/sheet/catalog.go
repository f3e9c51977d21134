package sheet

import "strings"

// ProductInfo holds the display metadata of a product.
type ProductInfo struct {
	Image string `json:"image"`
	Price string `json:"price"`
}

// ProductCatalog maps a product display name to its metadata.
type ProductCatalog map[string]ProductInfo

// Lookup returns the metadata for name. Unknown names yield Absent fields.
func (c ProductCatalog) Lookup(name string) ProductInfo {
	if info, ok := c[strings.TrimSpace(name)]; ok {
		return info
	}
	return ProductInfo{Image: Absent, Price: Absent}
}
