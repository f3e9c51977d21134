package aggregator

import (
	"context"
	"log/slog"
	"sync"

	api "agrimap/pkg/api/aggregator"
	apiSheet "agrimap/pkg/api/sheet"
	"agrimap/pkg/locnorm"
	num "agrimap/pkg/numeric"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/sync/errgroup"
)

const areaQueueSize = 1000

var _ api.CropAreaAggregator = (*cropAreaSum)(nil)

type cropAreaSum struct {
	include func(apiSheet.LocationRecord) bool
}

// ProvinceLevel selects whole-province records, so ward figures are not
// counted twice.
func ProvinceLevel(rec apiSheet.LocationRecord) bool {
	return locnorm.IsAggregate(rec.Ward)
}

// NewCropAreaSum creates an aggregator over the records accepted by include.
// A nil include selects ProvinceLevel.
func NewCropAreaSum(include func(apiSheet.LocationRecord) bool) api.CropAreaAggregator {
	if include == nil {
		include = ProvinceLevel
	}
	return &cropAreaSum{include: include}
}

type sumResult struct {
	total *apd.Decimal
	count int
}

// sumAreas adds up the area strings of one crop
func sumAreas(ctx context.Context, crop string, in <-chan string) (sumResult, error) {
	total := apd.New(0, 0)
	cnt := 0
	done := ctx.Done()

	for val := range in {
		select {
		case <-done:
			return sumResult{}, ctx.Err()
		default:
		}
		area, err := num.ParseMagnitude(val)
		if err != nil {
			slog.WarnContext(ctx, "Failed to parse crop area", slog.String("crop", crop), slog.String("area", val), slog.Any("error", err))
			continue
		}
		if _, err := num.SumContext.Add(total, total, area); err != nil {
			slog.ErrorContext(ctx, "Error adding crop area", "crop", crop, "area", val, "error", err)
			return sumResult{}, err
		}
		cnt++
	}
	return sumResult{total: total, count: cnt}, nil
}

// Process implements aggregators.CropAreaAggregator.
func (a *cropAreaSum) Process(ctx context.Context, locations <-chan apiSheet.LocationRecord) ([]api.CropArea, error) {
	eg, egCtx := errgroup.WithContext(ctx)

	// crop name → result, filled by one worker per crop
	var results sync.Map
	areas := make(map[string]chan string)
	var order []string

	feed := func() error {
		for rec := range locations {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}
			if !a.include(rec) {
				continue
			}
			for _, crop := range rec.Crops {
				if apiSheet.IsAbsent(crop.TotalArea) {
					continue
				}
				ch, ok := areas[crop.Name]
				if !ok {
					ch = make(chan string, areaQueueSize)
					areas[crop.Name] = ch
					order = append(order, crop.Name)
					name := crop.Name
					eg.Go(func() error {
						res, err := sumAreas(egCtx, name, ch)
						results.Store(name, res)
						return err
					})
				}
				select {
				case ch <- crop.TotalArea:
				case <-egCtx.Done():
					return egCtx.Err()
				}
			}
		}
		return nil
	}

	feedErr := feed()
	for name, ch := range areas {
		close(ch)
		delete(areas, name)
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if feedErr != nil {
		return nil, feedErr
	}

	outputs := make([]api.CropArea, 0, len(order))
	for _, name := range order {
		v, _ := results.Load(name)
		res := v.(sumResult)
		outputs = append(outputs, api.CropArea{
			Crop:      name,
			TotalArea: res.total.Text('f'),
			Locations: res.count,
		})
	}
	return outputs, nil
}
