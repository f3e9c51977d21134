package numeric

import (
	"strings"

	apd "github.com/cockroachdb/apd/v3"
)

// Placeholder is shown for missing figures.
const Placeholder = "---"

const maxFractionDigits = 3

var formatCtx = apd.Context{
	Precision:   100,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Traps:       apd.DefaultTraps,
	Rounding:    apd.RoundHalfEven,
}

// FormatVietnamese renders a magnitude the vi-VN way: "." groups thousands
// and "," separates decimals, with at most three fraction digits. Empty input
// renders as Placeholder; text that is not a number is returned unchanged.
func FormatVietnamese(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	d, err := ParseMagnitude(value)
	if err != nil {
		return value
	}
	return FormatDecimal(d)
}

// FormatDecimal renders d like FormatVietnamese.
func FormatDecimal(d *apd.Decimal) string {
	v := new(apd.Decimal).Set(d)
	if v.Exponent < -maxFractionDigits {
		if _, err := formatCtx.Quantize(v, v, -maxFractionDigits); err != nil {
			return d.Text('f')
		}
	}
	v.Reduce(v)

	text := v.Text('f')
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimPrefix(text, "-")
	intPart, frac, _ := strings.Cut(text, ".")

	var b strings.Builder
	if neg && !v.IsZero() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}
