package headers

import "errors"

var (
	errEmptyTotalToken = errors.New("total marker token cannot be empty")
	errMetricLabels    = errors.New("area and opportunity labels must differ")
)
