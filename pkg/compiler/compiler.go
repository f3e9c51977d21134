package compiler

import (
	"context"
	"log/slog"

	apiSheet "agrimap/pkg/api/sheet"
	"agrimap/pkg/catalog"
	"agrimap/pkg/headers"
	"agrimap/pkg/totals"
)

// Compiler turns a raw sheet matrix into the compiled location dataset.
type Compiler struct {
	productRows     [][]string
	externalCatalog bool
	totalToken      string
	skipBlank       bool
	indexerOpts     []headers.IndexerOption
	catalogOpts     []catalog.BuilderOption

	indexer  *headers.Indexer
	builder  *catalog.Builder
	resolver *totals.Resolver
}

// NewCompiler creates a compiler. Option errors from the indexer or the
// catalog builder are returned here, never from Compile.
func NewCompiler(opts ...CompilerOption) (*Compiler, error) {
	c := &Compiler{totalToken: totals.DefaultToken}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	indexerOpts := c.indexerOpts
	if c.totalToken != totals.DefaultToken {
		labels := headers.DefaultLabels
		labels.TotalToken = c.totalToken
		indexerOpts = append([]headers.IndexerOption{headers.WithLabels(labels)}, indexerOpts...)
	}
	if !c.externalCatalog {
		indexerOpts = append(indexerOpts, headers.WithImageRow())
	}

	var err error
	if c.indexer, err = headers.NewIndexer(indexerOpts...); err != nil {
		return nil, err
	}
	if c.builder, err = catalog.NewBuilder(c.catalogOpts...); err != nil {
		return nil, err
	}
	c.resolver = totals.NewResolver(c.totalToken)
	return c, nil
}

// Catalog builds the product catalog for matrix in the configured mode.
func (c *Compiler) Catalog(matrix [][]string) apiSheet.ProductCatalog {
	if c.externalCatalog {
		return c.builder.FromProductTable(c.productRows)
	}
	if len(matrix) < apiSheet.HeaderRows {
		return apiSheet.ProductCatalog{}
	}
	labels := c.indexer.Labels()
	isMetric := func(name string) bool {
		return labels.Area.Matches(name) || labels.Opportunity.Matches(name)
	}
	return c.builder.FromImageRow(matrix[apiSheet.PestRow], matrix[apiSheet.ProductRow], isMetric)
}

// Compile parses the whole matrix. Matrices with fewer than four rows yield an
// empty result. Province totals are resolved over all data rows before the
// first row is compiled; records keep the input row order.
func (c *Compiler) Compile(ctx context.Context, matrix [][]string) apiSheet.Result {
	result := apiSheet.Result{
		Locations:      []apiSheet.LocationRecord{},
		ProductCatalog: c.Catalog(matrix),
	}
	if len(matrix) < apiSheet.HeaderRows {
		slog.WarnContext(ctx, "Sheet has no header block", slog.Int("rows", len(matrix)))
		return result
	}

	columns := c.indexer.Index(matrix[:apiSheet.HeaderRows])
	data := matrix[apiSheet.HeaderRows:]
	resolved := c.resolver.Resolve(data)

	rc := NewRowCompiler(columns, result.ProductCatalog, resolved, c.resolver)
	rc.skipBlank = c.skipBlank
	skipped := 0
	for _, row := range data {
		rec, ok := rc.CompileRow(row)
		if !ok {
			skipped++
			continue
		}
		result.Locations = append(result.Locations, rec)
	}

	slog.InfoContext(ctx, "Sheet compiled",
		slog.Int("columns", len(columns)),
		slog.Int("locations", len(result.Locations)),
		slog.Int("skipped", skipped),
		slog.Int("products", len(result.ProductCatalog)),
	)
	return result
}

// Compile compiles matrix with the default configuration and, when
// productRows is non-nil, the external product catalog.
func Compile(ctx context.Context, matrix [][]string, productRows [][]string) apiSheet.Result {
	var opts []CompilerOption
	if productRows != nil {
		opts = append(opts, WithProductTable(productRows))
	}
	c, err := NewCompiler(opts...)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create compiler", slog.Any("error", err))
		return apiSheet.Result{Locations: []apiSheet.LocationRecord{}, ProductCatalog: apiSheet.ProductCatalog{}}
	}
	return c.Compile(ctx, matrix)
}
