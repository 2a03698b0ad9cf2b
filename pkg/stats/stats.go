// Package stats derives fleet report aggregates from a finalized
// catalog: per-type counts and WiFi-tier adoption. Aggregation is a
// read-only projection; it never mutates the catalog and produces
// identical output for identical input, so it can be re-run freely for
// reporting without re-triggering reconciliation.
package stats

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/planequery/fleetsync/pkg/catalogs"
)

// typeNames collapses ICAO type designators to marketing names so
// sub-variants report as one fleet type.
var typeNames = map[string]string{
	"B712": "Boeing 717",
	"B737": "Boeing 737",
	"B738": "Boeing 737",
	"B739": "Boeing 737",
	"B37M": "Boeing 737 MAX",
	"B38M": "Boeing 737 MAX",
	"B39M": "Boeing 737 MAX",
	"B752": "Boeing 757",
	"B753": "Boeing 757",
	"B763": "Boeing 767",
	"B764": "Boeing 767",
	"B772": "Boeing 777",
	"B77L": "Boeing 777",
	"B77W": "Boeing 777",
	"B788": "Boeing 787",
	"B789": "Boeing 787",
	"B78X": "Boeing 787",
	"A220": "Airbus A220",
	"BCS1": "Airbus A220",
	"BCS3": "Airbus A220",
	"A319": "Airbus A319",
	"A19N": "Airbus A319neo",
	"A320": "Airbus A320",
	"A20N": "Airbus A320neo",
	"A321": "Airbus A321",
	"A21N": "Airbus A321neo",
	"A332": "Airbus A330",
	"A333": "Airbus A330",
	"A339": "Airbus A330neo",
	"A359": "Airbus A350",
	"A35K": "Airbus A350",
	"E170": "Embraer E170",
	"E175": "Embraer E175",
	"E190": "Embraer E190",
	"E195": "Embraer E195",
	"CRJ2": "Bombardier CRJ200",
	"CRJ7": "Bombardier CRJ700",
	"CRJ9": "Bombardier CRJ900",
}

var caser = cases.Title(language.English)

// TypeCount is one row of the fleet type breakdown.
type TypeCount struct {
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count" yaml:"count"`
}

// TierAdoption is one row of the WiFi adoption table.
type TierAdoption struct {
	Tier    catalogs.WiFiTier `json:"tier" yaml:"tier"`
	Count   int               `json:"count" yaml:"count"`
	Percent int               `json:"percent" yaml:"percent"` // Of the whole fleet, rounded to nearest integer
}

// Summary is the derived fleet report aggregate consumed by external
// rendering collaborators.
type Summary struct {
	Airline       catalogs.Airline `json:"airline" yaml:"airline"`
	TotalAircraft int              `json:"total_aircraft" yaml:"total_aircraft"`
	Types         []TypeCount      `json:"types" yaml:"types"`
	WiFi          []TierAdoption   `json:"wifi" yaml:"wifi"`
}

// Aggregate computes the fleet summary for a catalog. Tiers with zero
// aircraft still appear with a count and percentage of 0; an empty
// catalog reports 0 for every tier rather than dividing by zero.
func Aggregate(catalog *catalogs.AirlineCatalog) Summary {
	summary := Summary{
		Airline:       catalog.Airline,
		TotalAircraft: catalog.Len(),
	}

	typeCounts := make(map[string]int)
	tierCounts := make(map[catalogs.WiFiTier]int)
	for i := range catalog.Aircraft {
		record := &catalog.Aircraft[i]
		typeCounts[TypeName(record.Type)]++
		tierCounts[record.Connectivity.WiFi]++
	}

	summary.Types = make([]TypeCount, 0, len(typeCounts))
	for name, count := range typeCounts {
		summary.Types = append(summary.Types, TypeCount{Type: name, Count: count})
	}
	sort.Slice(summary.Types, func(i, j int) bool {
		if summary.Types[i].Count != summary.Types[j].Count {
			return summary.Types[i].Count > summary.Types[j].Count
		}
		return summary.Types[i].Type < summary.Types[j].Type
	})

	for _, tier := range catalogs.WiFiTiers() {
		summary.WiFi = append(summary.WiFi, TierAdoption{
			Tier:    tier,
			Count:   tierCounts[tier],
			Percent: percent(tierCounts[tier], summary.TotalAircraft),
		})
	}

	return summary
}

// TypeName collapses an aircraft type to its reporting name: the
// simplification table keyed by ICAO designator first, then
// manufacturer and base model, then whatever identity the record has.
func TypeName(t catalogs.AircraftType) string {
	if name, ok := typeNames[strings.ToUpper(t.Variant)]; ok {
		return name
	}

	manufacturer := strings.TrimSpace(t.Manufacturer)
	model := strings.TrimSpace(t.Model)
	if manufacturer == "" && model == "" {
		if t.Variant != "" {
			return strings.ToUpper(t.Variant)
		}
		return "Unknown"
	}

	if manufacturer != "" {
		manufacturer = caser.String(strings.ToLower(manufacturer))
	}
	// Collapse sub-variants: "737-832" reports as "737".
	if idx := strings.IndexAny(model, "-/"); idx > 0 {
		model = model[:idx]
	}

	switch {
	case manufacturer == "":
		return model
	case model == "":
		return manufacturer
	default:
		return manufacturer + " " + model
	}
}

func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
