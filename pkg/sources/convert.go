package sources

import (
	"fmt"
	"strings"
	"time"

	"github.com/planequery/fleetsync/pkg/cabin"
	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/connectivity"
)

// Canonical converts a source record into a canonical aircraft record,
// deriving cabin class counts from the raw configuration string and the
// WiFi tier from the source's flag pair. Groups the source has no data
// for stay at their zero values (nil raw configuration, empty WiFi
// tier) so the reconciler can carry stored values forward. Non-fatal
// normalization issues come back as warnings; shape problems are left
// for schema validation.
func (r Record) Canonical() (catalogs.AircraftRecord, []string) {
	var warnings []string

	record := catalogs.AircraftRecord{
		Registration:  catalogs.CanonicalRegistration(r.Registration),
		ICAO24:        strings.ToLower(strings.TrimSpace(r.ICAO24)),
		SchemaVersion: r.SchemaVersion,
		Type: catalogs.AircraftType{
			Manufacturer: strings.TrimSpace(r.Manufacturer),
			Model:        strings.TrimSpace(r.Model),
			Variant:      strings.ToUpper(strings.TrimSpace(r.Variant)),
		},
		Operator: catalogs.Operator{
			Subfleet: strings.TrimSpace(r.Subfleet),
			CrewCode: strings.TrimSpace(r.CrewCode),
		},
		Status: catalogs.Status(strings.ToLower(strings.TrimSpace(r.Status))),
		Metadata: catalogs.Metadata{
			DeliveryDate: r.DeliveryDate,
			SerialNumber: r.SerialNumber,
			EngineType:   r.EngineType,
			Name:         r.Name,
			Livery:       r.Livery,
			Comments:     r.Comments,
		},
		History: []catalogs.HistoryEntry{},
	}

	// Cabin: class counts are always re-derived from the raw string,
	// never taken from the source pre-parsed.
	record.Cabin.Freighter = r.Freighter
	if r.CabinConfig != nil {
		raw := strings.ToUpper(strings.TrimSpace(*r.CabinConfig))
		record.Cabin.PhysicalConfiguration = &raw
		parsed := cabin.Parse(raw)
		record.Cabin.Classes = parsed.Classes
		record.Cabin.TotalSeats = parsed.TotalSeats
		warnings = append(warnings, parsed.Warnings...)
	}

	// Connectivity: tier from the flag pair, provider through the
	// canonical name table.
	if r.Connectivity != nil {
		record.Connectivity.WiFi = connectivity.Tier(r.Connectivity.NoWiFi, r.Connectivity.HighSpeedWiFi)
		provider, providerWarnings := connectivity.Provider(r.Connectivity.Provider)
		record.Connectivity.Provider = provider
		warnings = append(warnings, providerWarnings...)
		record.Connectivity.Satellite = r.Connectivity.Satellite
		record.Connectivity.LiveTV = r.Connectivity.LiveTV
		record.Connectivity.Power = r.Connectivity.Power
		record.Connectivity.USB = r.Connectivity.USB
	}

	if r.IFE != nil {
		record.IFE.Type = catalogs.IFEType(strings.ToLower(strings.TrimSpace(r.IFE.Type)))
		if record.IFE.Type == "" {
			record.IFE.Type = catalogs.IFENone
		}
		record.IFE.PersonalScreens = r.IFE.PersonalScreens
	}

	record.Tracking.TotalFlights = r.TotalFlights
	if t, ok := parseDate(r.FirstSeen); ok {
		record.Tracking.FirstSeen = t
	} else if r.FirstSeen != "" {
		warnings = append(warnings, fmt.Sprintf("unparsable first_seen date %q", r.FirstSeen))
	}
	if t, ok := parseDate(r.LastSeen); ok {
		record.Tracking.LastSeen = t
	} else if r.LastSeen != "" {
		warnings = append(warnings, fmt.Sprintf("unparsable last_seen date %q", r.LastSeen))
	}

	return record, warnings
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
