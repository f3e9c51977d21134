package streams

import (
	"context"
	"encoding/json"
	"io"

	iface "agrimap/pkg/api/streams"
)

type jsonReader struct {
	decoder *json.Decoder
}

var _ iface.JsonStream = (*jsonReader)(nil)

func NewJsonStream(reader io.Reader) iface.JsonStream {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	return &jsonReader{decoder: decoder}
}

// ReadJsonToken implements JsonStream.
func (j *jsonReader) ReadJsonToken(ctx context.Context) (json.Token, error) {
	if j == nil || j.decoder == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return j.decoder.Token()
	}
}

// More implements JsonStream.
func (j *jsonReader) More() bool {
	if j == nil || j.decoder == nil {
		return false
	}
	return j.decoder.More()
}

// DecodeValue implements JsonStream.
func (j *jsonReader) DecodeValue(ctx context.Context, v any) error {
	if j == nil || j.decoder == nil {
		return io.EOF
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return j.decoder.Decode(v)
	}
}
