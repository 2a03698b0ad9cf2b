package differ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/differ"
)

func testRecord() catalogs.AircraftRecord {
	config := "J020Y150"
	name := "Spirit of Atlanta"
	return catalogs.AircraftRecord{
		Registration: "N123DL",
		ICAO24:       "a0b1c2",
		Type: catalogs.AircraftType{
			Manufacturer: "Boeing",
			Model:        "737-800",
			Variant:      "B738",
		},
		Cabin: catalogs.Cabin{
			PhysicalConfiguration: &config,
			TotalSeats:            170,
			Classes:               catalogs.ClassCounts{Business: 20, Economy: 150},
		},
		Connectivity: catalogs.Connectivity{
			WiFi:     catalogs.WiFiLowSpeed,
			Provider: "Gogo",
			Power:    true,
		},
		IFE:      catalogs.IFE{Type: catalogs.IFESeatback, PersonalScreens: true},
		Status:   catalogs.StatusActive,
		Metadata: catalogs.Metadata{Name: &name},
	}
}

func TestDiff(t *testing.T) {
	t.Run("record against itself is empty", func(t *testing.T) {
		record := testRecord()
		assert.Empty(t, differ.Diff(&record, &record))
	})

	t.Run("equal copies are empty", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		assert.Empty(t, differ.Diff(&a, &b))
	})

	t.Run("single field change", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.Connectivity.WiFi = catalogs.WiFiHighSpeed

		changes := differ.Diff(&a, &b)
		require.Len(t, changes, 1)
		assert.Equal(t, "connectivity.wifi", changes[0].Path)
		require.NotNil(t, changes[0].Old)
		require.NotNil(t, changes[0].New)
		assert.Equal(t, "low-speed", *changes[0].Old)
		assert.Equal(t, "high-speed", *changes[0].New)
	})

	t.Run("first set field has nil old value", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		a.ICAO24 = ""

		changes := differ.Diff(&a, &b)
		require.Len(t, changes, 1)
		assert.Equal(t, "icao24", changes[0].Path)
		assert.Nil(t, changes[0].Old)
		require.NotNil(t, changes[0].New)
		assert.Equal(t, "a0b1c2", *changes[0].New)
	})

	t.Run("cleared optional field has nil new value", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.Metadata.Name = nil

		changes := differ.Diff(&a, &b)
		require.Len(t, changes, 1)
		assert.Equal(t, "metadata.name", changes[0].Path)
		assert.Nil(t, changes[0].New)
	})

	t.Run("nil existing reports every set field", func(t *testing.T) {
		record := testRecord()
		changes := differ.Diff(nil, &record)
		assert.NotEmpty(t, changes)
		for _, change := range changes {
			assert.Nil(t, change.Old, "path %s", change.Path)
		}
	})

	t.Run("emission follows canonical field order", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.Metadata.Livery = strptr("retro")
		b.Status = catalogs.StatusStored
		b.Connectivity.WiFi = catalogs.WiFiHighSpeed
		b.ICAO24 = "ffffff"

		changes := differ.Diff(&a, &b)
		require.Len(t, changes, 4)
		assert.Equal(t, "icao24", changes[0].Path)
		assert.Equal(t, "connectivity.wifi", changes[1].Path)
		assert.Equal(t, "status", changes[2].Path)
		assert.Equal(t, "metadata.livery", changes[3].Path)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.Type.Variant = "B38M"
		b.Cabin.TotalSeats = 172
		b.Cabin.Classes.Economy = 152

		first := differ.Diff(&a, &b)
		second := differ.Diff(&a, &b)
		assert.Equal(t, first, second)
	})

	t.Run("every emitted path is a declared diffable field", func(t *testing.T) {
		declared := make(map[string]bool, len(catalogs.FieldOrder))
		for _, path := range catalogs.FieldOrder {
			declared[path] = true
		}

		record := testRecord()
		for _, change := range differ.Diff(nil, &record) {
			assert.True(t, declared[change.Path], "undeclared path %s", change.Path)
		}
	})

	t.Run("zero and absent seat counts are not a change", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		a.Cabin.Classes.First = 0
		b.Cabin.Classes.First = 0
		assert.Empty(t, differ.Diff(&a, &b))
	})

	t.Run("history is never diffed", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.History = []catalogs.HistoryEntry{{Property: "status"}}
		assert.Empty(t, differ.Diff(&a, &b))
	})

	t.Run("tracking is never diffed", func(t *testing.T) {
		a := testRecord()
		b := testRecord()
		b.Tracking.TotalFlights = 4242
		assert.Empty(t, differ.Diff(&a, &b))
	})
}

func strptr(s string) *string {
	return &s
}
