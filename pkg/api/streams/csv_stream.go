package streams

import "context"

// CsvStream represents a stream of sheet rows.
type CsvStream interface {
	// ReadCsvRecord reads the next row from the stream.
	// Returns the row as a slice of strings, or io.EOF after the last row.
	ReadCsvRecord(ctx context.Context) ([]string, error)
}
