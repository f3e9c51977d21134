// Package admin loads the two-level province → ward hierarchy.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	apiAdmin "agrimap/pkg/api/admin"
	apiStreams "agrimap/pkg/api/streams"
)

// LoadHierarchy decodes a JSON array of provinces, keeping the source order.
// Names are trimmed and wards without a provinceCode inherit their parent's.
func LoadHierarchy(ctx context.Context, stream apiStreams.JsonStream) (apiAdmin.Hierarchy, error) {
	if stream == nil {
		return nil, errNilStream
	}
	tok, err := stream.ReadJsonToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, errNotAnArray
	}

	var out apiAdmin.Hierarchy
	for stream.More() {
		var p apiAdmin.Province
		if err := stream.DecodeValue(ctx, &p); err != nil {
			return nil, fmt.Errorf("failed to decode province %d: %w", len(out), err)
		}
		if p.Code == "" {
			return nil, fmt.Errorf("%w: %q", errMissingCode, p.Name)
		}
		p.Name = strings.TrimSpace(p.Name)
		for i := range p.Wards {
			w := &p.Wards[i]
			w.Name = strings.TrimSpace(w.Name)
			if w.ProvinceCode == "" {
				w.ProvinceCode = p.Code
			}
		}
		out = append(out, p)
	}
	if _, err := stream.ReadJsonToken(ctx); err != nil {
		return nil, fmt.Errorf("failed to read hierarchy end: %w", err)
	}

	slog.DebugContext(ctx, "Hierarchy loaded", slog.Int("provinces", len(out)))
	return out, nil
}
