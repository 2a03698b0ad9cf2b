package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/stats"
)

func aircraft(registration, variant string, tier catalogs.WiFiTier) catalogs.AircraftRecord {
	return catalogs.AircraftRecord{
		Registration: registration,
		Type:         catalogs.AircraftType{Variant: variant},
		Connectivity: catalogs.Connectivity{WiFi: tier},
	}
}

func fleet(t *testing.T, records ...catalogs.AircraftRecord) *catalogs.AirlineCatalog {
	t.Helper()
	catalog := catalogs.New(catalogs.Airline{IATA: "AS", Name: "Alaska Airlines"})
	for _, record := range records {
		require.NoError(t, catalog.Add(record))
	}
	return catalog
}

func TestAggregate(t *testing.T) {
	t.Run("empty catalog reports zeros for every tier", func(t *testing.T) {
		summary := stats.Aggregate(fleet(t))

		assert.Zero(t, summary.TotalAircraft)
		assert.Empty(t, summary.Types)
		require.Len(t, summary.WiFi, len(catalogs.WiFiTiers()))
		for _, row := range summary.WiFi {
			assert.Zero(t, row.Count, row.Tier)
			assert.Zero(t, row.Percent, row.Tier)
		}
	})

	t.Run("groups variants under one fleet type", func(t *testing.T) {
		summary := stats.Aggregate(fleet(t,
			aircraft("N501AS", "B738", catalogs.WiFiHighSpeed),
			aircraft("N502AS", "B739", catalogs.WiFiHighSpeed),
			aircraft("N503AS", "B39M", catalogs.WiFiHighSpeed),
			aircraft("N504AS", "E175", catalogs.WiFiLowSpeed),
		))

		assert.Equal(t, 4, summary.TotalAircraft)
		assert.Equal(t, []stats.TypeCount{
			{Type: "Boeing 737", Count: 2},
			{Type: "Boeing 737 MAX", Count: 1},
			{Type: "Embraer E175", Count: 1},
		}, summary.Types)
	})

	t.Run("types sort by count then name", func(t *testing.T) {
		summary := stats.Aggregate(fleet(t,
			aircraft("N1", "E175", catalogs.WiFiNone),
			aircraft("N2", "A21N", catalogs.WiFiNone),
			aircraft("N3", "A21N", catalogs.WiFiNone),
			aircraft("N4", "B738", catalogs.WiFiNone),
		))

		assert.Equal(t, []stats.TypeCount{
			{Type: "Airbus A321neo", Count: 2},
			{Type: "Boeing 737", Count: 1},
			{Type: "Embraer E175", Count: 1},
		}, summary.Types)
	})

	t.Run("wifi rows cover every tier with rounded percentages", func(t *testing.T) {
		summary := stats.Aggregate(fleet(t,
			aircraft("N1", "B738", catalogs.WiFiHighSpeed),
			aircraft("N2", "B738", catalogs.WiFiHighSpeed),
			aircraft("N3", "B738", catalogs.WiFiLowSpeed),
		))

		assert.Equal(t, []stats.TierAdoption{
			{Tier: catalogs.WiFiNone, Count: 0, Percent: 0},
			{Tier: catalogs.WiFiLowSpeed, Count: 1, Percent: 33},
			{Tier: catalogs.WiFiHighSpeed, Count: 2, Percent: 67},
		}, summary.WiFi)
	})

	t.Run("does not mutate the catalog", func(t *testing.T) {
		catalog := fleet(t, aircraft("N1", "B738", catalogs.WiFiHighSpeed))
		before := catalog.DeepCopy()

		first := stats.Aggregate(catalog)
		second := stats.Aggregate(catalog)

		assert.Equal(t, first, second)
		assert.Equal(t, before, catalog)
	})
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		in   catalogs.AircraftType
		want string
	}{
		{"designator table", catalogs.AircraftType{Variant: "B38M"}, "Boeing 737 MAX"},
		{"designator is case insensitive", catalogs.AircraftType{Variant: "bcs3"}, "Airbus A220"},
		{"table wins over manufacturer fields", catalogs.AircraftType{Manufacturer: "BOEING", Model: "737-9", Variant: "B39M"}, "Boeing 737 MAX"},
		{"manufacturer and base model", catalogs.AircraftType{Manufacturer: "BOEING", Model: "737-832"}, "Boeing 737"},
		{"model with slash sub-variant", catalogs.AircraftType{Manufacturer: "embraer", Model: "ERJ 190/195"}, "Embraer ERJ 190"},
		{"model only", catalogs.AircraftType{Model: "737-800"}, "737"},
		{"manufacturer only", catalogs.AircraftType{Manufacturer: "airbus"}, "Airbus"},
		{"unmapped variant passes through uppercased", catalogs.AircraftType{Variant: "c25a"}, "C25A"},
		{"empty identity", catalogs.AircraftType{}, "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.TypeName(tt.in))
		})
	}
}
