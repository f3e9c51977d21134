package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"agrimap/pkg/admin"
	apiAdmin "agrimap/pkg/api/admin"
	"agrimap/pkg/streams"

	"golang.org/x/sync/errgroup"
)

type inputs struct {
	matrix    [][]string
	products  [][]string
	hierarchy apiAdmin.Hierarchy
}

func open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return file, nil
}

func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

func loadRows(ctx context.Context, path, sheet, charset string) ([][]string, error) {
	source, err := open(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	if isWorkbook(path) {
		stream, closer, err := streams.NewXlsxStream(source, sheet)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		defer closer.Close()
		return streams.ReadAll(ctx, stream)
	}

	stream, err := streams.NewCsvStream(source, streams.WithCharset(charset))
	if err != nil {
		return nil, err
	}
	rows, err := streams.ReadAll(ctx, stream)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func loadHierarchy(ctx context.Context, path string) (apiAdmin.Hierarchy, error) {
	source, err := open(path)
	if err != nil {
		return nil, err
	}
	defer source.Close()
	h, err := admin.LoadHierarchy(ctx, streams.NewJsonStream(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// loadInputs reads the three sources concurrently; they do not depend on each
// other.
func loadInputs(ctx context.Context) (inputs, error) {
	var in inputs
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		rows, err := loadRows(ctx, matrixPath, sheetName, charset)
		in.matrix = rows
		return err
	})
	if productsPath != "" {
		eg.Go(func() error {
			rows, err := loadRows(ctx, productsPath, "", charset)
			in.products = rows
			return err
		})
	}
	if adminPath != "" {
		eg.Go(func() error {
			h, err := loadHierarchy(ctx, adminPath)
			in.hierarchy = h
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return inputs{}, err
	}
	return in, nil
}
