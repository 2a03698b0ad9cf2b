package fleetsync_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planequery/fleetsync"
	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/reconcile"
	"github.com/planequery/fleetsync/pkg/sources"
)

func testInstance(t *testing.T) fleetsync.Fleetsync {
	t.Helper()
	clock := func() time.Time { return time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC) }
	fs, err := fleetsync.New(
		fleetsync.WithCatalogDir(t.TempDir()),
		fleetsync.WithReconciler(reconcile.New(reconcile.WithClock(clock))),
	)
	require.NoError(t, err)
	return fs
}

func testSnapshot(registrations ...string) *sources.Snapshot {
	snap := &sources.Snapshot{Airline: "DL"}
	for _, registration := range registrations {
		snap.Records = append(snap.Records, sources.Record{
			Registration: registration,
			Variant:      "B738",
			Connectivity: &sources.Connectivity{Provider: "Gogo"},
		})
	}
	return snap
}

func TestSync(t *testing.T) {
	t.Run("first sync persists a fresh catalog", func(t *testing.T) {
		fs := testInstance(t)

		report, err := fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(testSnapshot("N123DL", "N456DL")))
		require.NoError(t, err)
		assert.Equal(t, 2, report.Inserted)

		catalog, err := fs.Catalog("DL")
		require.NoError(t, err)
		assert.Equal(t, 2, catalog.Len())
		assert.Equal(t, "DL", catalog.Airline.IATA)

		airlines, err := fs.Airlines()
		require.NoError(t, err)
		assert.Equal(t, []string{"dl"}, airlines)
	})

	t.Run("unchanged re-sync leaves the document alone", func(t *testing.T) {
		fs := testInstance(t)
		_, err := fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(testSnapshot("N123DL")))
		require.NoError(t, err)

		report, err := fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(testSnapshot("N123DL")))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Unchanged)
		assert.False(t, report.HasChanges())
	})

	t.Run("dry run reports without persisting", func(t *testing.T) {
		fs := testInstance(t)

		report, err := fs.Sync(context.Background(), "DL",
			fleetsync.WithSnapshot(testSnapshot("N123DL")),
			fleetsync.WithDryRun(true))
		require.NoError(t, err)
		assert.Equal(t, 1, report.Inserted)

		_, err = fs.Catalog("DL")
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("empty snapshot fails the run and persists nothing", func(t *testing.T) {
		fs := testInstance(t)
		_, err := fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(testSnapshot("N123DL")))
		require.NoError(t, err)

		_, err = fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(&sources.Snapshot{Airline: "DL"}))
		require.Error(t, err)
		assert.True(t, errors.IsEmptySnapshot(err))

		catalog, err := fs.Catalog("DL")
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("hooks stay silent when persistence fails", func(t *testing.T) {
		// A regular file where the catalog directory should be makes
		// every save fail.
		blocked := filepath.Join(t.TempDir(), "catalogs")
		require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o644))

		fs, err := fleetsync.New(fleetsync.WithCatalogDir(blocked))
		require.NoError(t, err)

		fired := false
		fs.OnAircraftAdded(func(string) { fired = true })

		_, err = fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(testSnapshot("N123DL")))
		require.Error(t, err)
		assert.False(t, fired, "hooks must only observe durably applied changes")
	})

	t.Run("hooks fire for inserts and updates", func(t *testing.T) {
		fs := testInstance(t)

		var added []string
		updates := make(map[string][]catalogs.HistoryEntry)
		fs.OnAircraftAdded(func(registration string) {
			added = append(added, registration)
		})
		fs.OnAircraftUpdated(func(registration string, entries []catalogs.HistoryEntry) {
			updates[registration] = entries
		})

		_, err := fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(testSnapshot("N123DL", "N456DL")))
		require.NoError(t, err)
		assert.Equal(t, []string{"N123DL", "N456DL"}, added)
		assert.Empty(t, updates)

		upgraded := testSnapshot("N123DL", "N456DL")
		upgraded.Records[0].Connectivity.HighSpeedWiFi = true
		_, err = fs.Sync(context.Background(), "DL", fleetsync.WithSnapshot(upgraded), fleetsync.WithSource(catalogs.SourceManual))
		require.NoError(t, err)

		assert.Len(t, added, 2, "no further inserts")
		require.Contains(t, updates, "N123DL")
		require.Len(t, updates["N123DL"], 1)
		assert.Equal(t, "connectivity.wifi", updates["N123DL"][0].Property)
		assert.Equal(t, catalogs.SourceManual, updates["N123DL"][0].Source)
	})
}
