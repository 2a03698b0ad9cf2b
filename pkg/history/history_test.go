package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/differ"
	"github.com/planequery/fleetsync/pkg/history"
)

func TestAppend(t *testing.T) {
	detectedAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("entries preserve diff order and provenance", func(t *testing.T) {
		old := "low-speed"
		new1 := "high-speed"
		new2 := "Starlink"
		changes := []differ.FieldChange{
			{Path: "connectivity.wifi", Old: &old, New: &new1},
			{Path: "connectivity.provider", New: &new2},
		}

		record := catalogs.AircraftRecord{Registration: "N123DL"}
		entries := history.Append(&record, changes, detectedAt, catalogs.SourceFlightAPI)

		require.Len(t, entries, 2)
		assert.Equal(t, "connectivity.wifi", entries[0].Property)
		assert.Equal(t, "connectivity.provider", entries[1].Property)
		for _, entry := range entries {
			assert.Equal(t, detectedAt, entry.Timestamp)
			assert.Equal(t, catalogs.SourceFlightAPI, entry.Source)
		}
		assert.Equal(t, entries, record.History)
	})

	t.Run("appends after existing entries without touching them", func(t *testing.T) {
		existing := catalogs.HistoryEntry{
			Timestamp: detectedAt.AddDate(0, -1, 0),
			Property:  "status",
			Source:    catalogs.SourceManual,
		}
		record := catalogs.AircraftRecord{History: []catalogs.HistoryEntry{existing}}

		value := "retro"
		history.Append(&record, []differ.FieldChange{{Path: "metadata.livery", New: &value}}, detectedAt, catalogs.SourceCommunity)

		require.Len(t, record.History, 2)
		assert.Equal(t, existing, record.History[0])
		assert.Equal(t, "metadata.livery", record.History[1].Property)
	})

	t.Run("no changes appends nothing", func(t *testing.T) {
		record := catalogs.AircraftRecord{}
		entries := history.Append(&record, nil, detectedAt, catalogs.SourceFlightAPI)
		assert.Empty(t, entries)
		assert.Empty(t, record.History)
	})

	t.Run("nil old value round trips as previously absent", func(t *testing.T) {
		value := "CFM56"
		entries := history.Entries([]differ.FieldChange{{Path: "metadata.engine_type", New: &value}}, detectedAt, catalogs.SourceFAARegistry)
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].OldValue)
		require.NotNil(t, entries[0].NewValue)
		assert.Equal(t, "CFM56", *entries[0].NewValue)
	})
}
