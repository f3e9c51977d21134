package streams

import (
	"context"
	"errors"
	"io"
	"log/slog"

	iface "agrimap/pkg/api/streams"
)

// ReadAll drains the stream into a matrix.
func ReadAll(ctx context.Context, stream iface.CsvStream) ([][]string, error) {
	var rows [][]string
	for {
		record, err := stream.ReadCsvRecord(ctx)
		if errors.Is(err, io.EOF) {
			slog.DebugContext(ctx, "End of row stream", slog.Int("rows", len(rows)))
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, record)
	}
}
