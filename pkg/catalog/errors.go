package catalog

import "errors"

var (
	errNameColumnIndexNotSpecified  = errors.New("product name column index not specified")
	errImageColumnIndexNotSpecified = errors.New("image column index not specified")
	errPriceColumnIndexNotSpecified = errors.New("price column index not specified")
	errColumnIndexesEqual           = errors.New("catalog column indexes must be distinct")
)
