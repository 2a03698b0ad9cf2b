// Package cabin decodes raw seating-configuration codes into canonical
// class-count breakdowns. Configuration strings are composed of repeated
// <ClassCode><3-digit count> tokens, e.g. "P004J058W028Y206".
package cabin

import (
	"fmt"

	"github.com/planequery/fleetsync/pkg/catalogs"
)

// Class is a canonical cabin class.
type Class string

// Canonical cabin classes.
const (
	ClassFirst          Class = "first"
	ClassBusiness       Class = "business"
	ClassPremiumEconomy Class = "premium_economy"
	ClassEconomy        Class = "economy"
)

// classCodes maps raw configuration class codes to canonical classes.
// P is used by some sources for first-class suites, C for legacy
// business class.
var classCodes = map[byte]Class{
	'P': ClassFirst,
	'F': ClassFirst,
	'J': ClassBusiness,
	'C': ClassBusiness,
	'W': ClassPremiumEconomy,
	'Y': ClassEconomy,
}

// Result is the outcome of parsing one configuration string.
// All four class counts are always present, defaulting to zero.
type Result struct {
	Classes    catalogs.ClassCounts
	TotalSeats int      // Arithmetic sum of the recognized class counts
	Warnings   []string // Unrecognized codes and malformed tokens, non-fatal
}

// Parse decodes a raw configuration string. Unrecognized class codes are
// skipped with a recorded warning. An empty input yields all-zero counts
// and zero total seats, which is distinct from an unknown configuration
// (represented upstream by a nil raw string). Parse is stateless and
// idempotent.
func Parse(raw string) Result {
	var res Result

	i := 0
	for i < len(raw) {
		code := raw[i]
		if code < 'A' || code > 'Z' {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unexpected character %q at position %d", code, i))
			i++
			continue
		}
		if i+4 > len(raw) || !isDigits(raw[i+1:i+4]) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("malformed token starting at %q (position %d)", code, i))
			i++
			continue
		}

		count := int(raw[i+1]-'0')*100 + int(raw[i+2]-'0')*10 + int(raw[i+3]-'0')
		class, ok := classCodes[code]
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("unrecognized class code %q, skipping %d seats", code, count))
			i += 4
			continue
		}

		switch class {
		case ClassFirst:
			res.Classes.First += count
		case ClassBusiness:
			res.Classes.Business += count
		case ClassPremiumEconomy:
			res.Classes.PremiumEconomy += count
		case ClassEconomy:
			res.Classes.Economy += count
		}
		res.TotalSeats += count
		i += 4
	}

	return res
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
