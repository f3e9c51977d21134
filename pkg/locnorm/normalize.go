// Package locnorm canonicalises administrative location names into keys
// that compare equal across accents, case, spacing and unit prefixes.
package locnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceSquasher = regexp.MustCompile(`\s+`)
	// one leading unit word; checked after accents are folded
	unitPrefix = regexp.MustCompile(`^(thanh pho|thi xa|thi tran|tinh|tp\.?|quan|huyen|xa|phuong|province|city|district|ward)\s+`)
	// aggregate words, as separate words only
	aggregateLead  = regexp.MustCompile(`^(tat ca|tong cong|toan bo|all|total)\s+`)
	aggregateTrail = regexp.MustCompile(`\s+(tat ca|tong cong|toan bo|all|total)$`)
	nonAlnum       = regexp.MustCompile(`[^a-z0-9]`)

	aggregateKeys = map[string]bool{
		"":         true,
		"all":      true,
		"total":    true,
		"tatca":    true,
		"tongcong": true,
		"toanbo":   true,
	}
)

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	// đ has no canonical decomposition
	return strings.NewReplacer("đ", "d", "Đ", "d").Replace(out)
}

// Normalize returns the matching key of a location name. It never fails and
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	s := foldAccents(strings.ToLower(name))
	s = strings.TrimSpace(spaceSquasher.ReplaceAllString(s, " "))
	s = unitPrefix.ReplaceAllString(s, "")
	s = aggregateLead.ReplaceAllString(s, "")
	s = aggregateTrail.ReplaceAllString(s, "")
	s = spaceSquasher.ReplaceAllString(s, "")
	s = nonAlnum.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// IsAggregate reports whether name denotes a whole-province aggregate rather
// than a ward: empty, or one of the "all"/"total" sentinel words.
func IsAggregate(name string) bool {
	return aggregateKeys[Normalize(name)]
}

// Equal reports whether two names share a key.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
