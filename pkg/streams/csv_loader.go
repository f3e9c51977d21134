package streams

import (
	"context"
	"encoding/csv"
	"io"

	iface "agrimap/pkg/api/streams"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type csvReader struct {
	reader *csv.Reader
}

var _ iface.CsvStream = (*csvReader)(nil)

// NewCsvStream creates a new CSV stream from an io.Reader.
// Rows may have different lengths; the header block is returned like any
// other row.
func NewCsvStream(reader io.Reader, opts ...CsvOption) (iface.CsvStream, error) {
	cfg := csvConfig{
		decoder: unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		comma:   ',',
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	csvR := csv.NewReader(transform.NewReader(reader, cfg.decoder))
	csvR.Comma = cfg.comma
	csvR.FieldsPerRecord = -1
	csvR.LazyQuotes = true

	return &csvReader{reader: csvR}, nil
}

// ReadCsvRecord implements CsvStream.
func (c *csvReader) ReadCsvRecord(ctx context.Context) ([]string, error) {
	if c == nil || c.reader == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return c.reader.Read()
	}
}
