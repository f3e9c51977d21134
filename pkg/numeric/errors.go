package numeric

import "errors"

var (
	// ErrNotANumber is returned when a cell does not hold a magnitude
	ErrNotANumber = errors.New("value is not a number")
)
