package aggregators

import (
	"context"

	apiSheet "agrimap/pkg/api/sheet"
)

// CropArea is the summed crop area over a set of locations.
type CropArea struct {
	Crop      string `json:"crop"`
	TotalArea string `json:"totalArea"`
	Locations int    `json:"locations"`
}

// CropAreaAggregator sums crop areas of compiled location records
type CropAreaAggregator interface {
	// Process reads records until the channel is closed and returns one
	// CropArea per crop in order of first appearance.
	Process(ctx context.Context, locations <-chan apiSheet.LocationRecord) ([]CropArea, error)
}
