// Package connectivity maps heterogeneous source connectivity flags into
// the canonical WiFi tier and provider names.
package connectivity

import (
	"fmt"
	"strings"

	"github.com/planequery/fleetsync/pkg/catalogs"
)

// providerNames maps lowercased source provider strings to canonical
// provider names. The normalizer never guesses provider identity from
// the WiFi tier alone: an upgrade (e.g. Gogo fleet moving to Starlink)
// is only reflected when the source reports it explicitly.
var providerNames = map[string]string{
	"gogo":                "Gogo",
	"gogo 2ku":            "Gogo 2Ku",
	"intelsat":            "Intelsat",
	"viasat":              "Viasat",
	"panasonic":           "Panasonic Avionics",
	"panasonic avionics":  "Panasonic Avionics",
	"starlink":            "Starlink",
	"anuvu":               "Anuvu",
	"global eagle":        "Anuvu", // Rebranded 2021
	"thales":              "Thales",
	"sita onair":          "SITA OnAir",
}

// Tier derives the canonical WiFi tier from a source's flag pair.
// The no-WiFi flag wins over everything; otherwise the high-speed flag
// decides between the two installed tiers.
func Tier(noWiFi, highSpeed bool) catalogs.WiFiTier {
	switch {
	case noWiFi:
		return catalogs.WiFiNone
	case highSpeed:
		return catalogs.WiFiHighSpeed
	default:
		return catalogs.WiFiLowSpeed
	}
}

// Provider normalizes a source provider string to its canonical name.
// Unmapped provider strings pass through unchanged with a warning so
// that new providers surface in change reports instead of being lost.
func Provider(name string) (canonical string, warnings []string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil
	}
	if mapped, ok := providerNames[strings.ToLower(trimmed)]; ok {
		return mapped, nil
	}
	return trimmed, []string{fmt.Sprintf("unmapped connectivity provider %q", trimmed)}
}
