package compiler

import (
	"agrimap/pkg/catalog"
	"agrimap/pkg/headers"
)

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler) error

// WithProductTable selects the external-catalog mode: product metadata comes
// from rows of [name, legacyImageUrl, newImageUrl, price] whose first row is a
// header. Without it the third header row is read as product images.
func WithProductTable(rows [][]string) CompilerOption {
	return func(c *Compiler) error {
		c.productRows = rows
		c.externalCatalog = true
		return nil
	}
}

// WithIndexerOptions passes options to the column indexer
func WithIndexerOptions(opts ...headers.IndexerOption) CompilerOption {
	return func(c *Compiler) error {
		c.indexerOpts = append(c.indexerOpts, opts...)
		return nil
	}
}

// WithCatalogOptions passes options to the product catalog builder
func WithCatalogOptions(opts ...catalog.BuilderOption) CompilerOption {
	return func(c *Compiler) error {
		c.catalogOpts = append(c.catalogOpts, opts...)
		return nil
	}
}

// WithTotalToken sets the marker word of aggregate rows and columns. An empty
// token keeps the default.
func WithTotalToken(token string) CompilerOption {
	return func(c *Compiler) error {
		if token == "" {
			return nil
		}
		c.totalToken = token
		return nil
	}
}

// WithSkipBlankRows drops data rows whose province and ward cells are both
// empty instead of emitting a record for them.
func WithSkipBlankRows() CompilerOption {
	return func(c *Compiler) error {
		c.skipBlank = true
		return nil
	}
}
