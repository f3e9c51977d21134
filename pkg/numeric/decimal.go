package numeric

import (
	"fmt"
	"strings"

	apd "github.com/cockroachdb/apd/v3"
)

var (
	// SumContext is used to accumulate sheet magnitudes without loss.
	SumContext = apd.Context{
		Precision:   100,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}

	cleaner = strings.NewReplacer("$", "", "€", "", "£", "", "₫", "", ",", "", " ", "", "\u00a0", "")
)

// ParseMagnitude parses a sheet magnitude such as "1,320" or "12.5".
// Thousands separators, spaces and currency symbols are ignored.
func ParseMagnitude(value string) (*apd.Decimal, error) {
	cleaned := strings.TrimSpace(cleaner.Replace(value))
	if cleaned == "" {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, value)
	}
	d, _, err := apd.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, value)
	}
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("%w: %q", ErrNotANumber, value)
	}
	return d, nil
}

// Sum adds magnitudes; unparsable values are reported, absent ones are not
// expected here.
func Sum(values ...string) (*apd.Decimal, error) {
	total := apd.New(0, 0)
	for _, v := range values {
		d, err := ParseMagnitude(v)
		if err != nil {
			return nil, err
		}
		if _, err := SumContext.Add(total, total, d); err != nil {
			return nil, err
		}
	}
	return total, nil
}
