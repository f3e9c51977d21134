package streams

import (
	"context"
	"fmt"
	"io"
	"slices"

	iface "agrimap/pkg/api/streams"

	"github.com/xuri/excelize/v2"
)

type xlsxReader struct {
	rows *excelize.Rows
	file *excelize.File
}

var _ iface.CsvStream = (*xlsxReader)(nil)

// NewXlsxStream opens a workbook and streams the rows of sheet. An empty
// sheet name selects the first sheet. The returned closer releases the
// workbook.
func NewXlsxStream(reader io.Reader, sheet string) (iface.CsvStream, io.Closer, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, nil, errNoSheets
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %q", errSheetMissing, sheet)
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	x := &xlsxReader{rows: rows, file: f}
	return x, x, nil
}

// ReadCsvRecord implements CsvStream.
func (x *xlsxReader) ReadCsvRecord(ctx context.Context) ([]string, error) {
	if x == nil || x.rows == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	if !x.rows.Next() {
		if err := x.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return x.rows.Columns()
}

// Close implements io.Closer.
func (x *xlsxReader) Close() error {
	if x == nil || x.file == nil {
		return nil
	}
	if x.rows != nil {
		_ = x.rows.Close()
	}
	return x.file.Close()
}
