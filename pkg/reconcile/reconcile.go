// Package reconcile merges fleet snapshots into stored airline
// catalogs. For each valid incoming record it upserts by canonical
// registration, detects field-level changes through the differ, and
// appends provenance-tagged history entries. Malformed individual
// records are isolated and rejected; only a missing or empty snapshot
// fails the whole run, in which case the stored catalog is returned
// untouched.
//
// A run mutates a deep copy of the stored catalog, so the caller's
// catalog is never left partially merged. The reconciler holds no state
// between runs; callers serialize runs per airline (single writer per
// catalog) and may reconcile different airlines in parallel.
package reconcile

import (
	"time"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/differ"
	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/history"
	"github.com/planequery/fleetsync/pkg/logging"
	"github.com/planequery/fleetsync/pkg/schema"
	"github.com/planequery/fleetsync/pkg/sources"
)

// Reconciler merges snapshots into catalogs. It is stateless between
// calls and safe to share across concurrent runs over distinct
// airlines.
type Reconciler struct {
	registry *schema.Registry
	now      func() time.Time
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithRegistry sets the schema registry used to validate incoming
// records.
func WithRegistry(registry *schema.Registry) Option {
	return func(r *Reconciler) {
		r.registry = registry
	}
}

// WithClock sets the clock used to stamp detection timestamps. Tests
// use this to make runs deterministic.
func WithClock(now func() time.Time) Option {
	return func(r *Reconciler) {
		r.now = now
	}
}

// New creates a Reconciler with default settings.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		registry: schema.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile merges a snapshot into the existing catalog and returns the
// updated catalog plus a change report. The existing catalog is never
// mutated. A nil existing catalog starts a fresh one for the snapshot's
// airline. A nil or empty snapshot is a whole-run failure: the original
// catalog is returned unchanged alongside the error.
func (r *Reconciler) Reconcile(existing *catalogs.AirlineCatalog, snapshot *sources.Snapshot, source catalogs.SourceID) (*catalogs.AirlineCatalog, *Report, error) {
	if snapshot == nil || len(snapshot.Records) == 0 {
		var airline string
		if existing != nil {
			airline = existing.Airline.Code()
		}
		return existing, nil, errors.NewSnapshotError(airline, "snapshot has no records", errors.ErrEmptySnapshot)
	}

	if existing == nil {
		existing = catalogs.New(catalogs.Airline{IATA: snapshot.Airline})
	}

	detectedAt := r.now().UTC()
	updated := existing.DeepCopy()
	report := newReport(source, detectedAt)
	log := logging.Default()

	for _, raw := range snapshot.Records {
		record, warnings := raw.Canonical()
		report.warn(record.Registration, warnings...)

		result := r.registry.Validate(&record)
		for _, w := range result.Warnings {
			report.warn(record.Registration, w.String())
		}
		if !result.Valid() {
			reasons := make([]string, len(result.Violations))
			for i, v := range result.Violations {
				reasons[i] = v.String()
			}
			report.reject(record.Registration, reasons)
			log.Debug().
				Str("registration", raw.Registration).
				Strs("reasons", reasons).
				Msg("Rejected snapshot record")
			continue
		}

		stored := updated.Get(record.Registration)
		if stored == nil {
			r.insert(updated, record, detectedAt)
			report.Inserted++
			continue
		}

		carryForward(stored, &record)
		changes := differ.Diff(stored, &record)
		if len(changes) > 0 {
			applyIncoming(stored, &record)
			entries := history.Append(stored, changes, detectedAt, source)
			report.record(stored.Registration, entries)
			report.Updated++
		} else {
			report.Unchanged++
		}
		refreshTracking(stored, record.Tracking, detectedAt)
	}

	updated.GeneratedAt = detectedAt
	updated.SchemaVersion = r.registry.Version()

	log.Info().
		Str("airline", updated.Airline.Code()).
		Str("source", source.String()).
		Str("run_id", report.RunID).
		Int("inserted", report.Inserted).
		Int("updated", report.Updated).
		Int("unchanged", report.Unchanged).
		Int("rejected", report.Rejected).
		Msg("Reconciled fleet snapshot")

	return updated, report, nil
}

// insert adds a first-encounter record. History starts empty; sighting
// dates default to the run timestamp when the source does not report
// them.
func (r *Reconciler) insert(catalog *catalogs.AirlineCatalog, record catalogs.AircraftRecord, detectedAt time.Time) {
	if record.Status == "" {
		record.Status = catalogs.StatusActive
	}
	if record.Tracking.FirstSeen.IsZero() {
		record.Tracking.FirstSeen = detectedAt
	}
	if record.Tracking.LastSeen.IsZero() {
		record.Tracking.LastSeen = detectedAt
	}
	record.History = []catalogs.HistoryEntry{}
	// Registration was validated non-empty and cannot collide: Get
	// returned nil under the same canonical key.
	_ = catalog.Add(record)
}

// refreshTracking updates sighting and utilization data for a record
// present in the snapshot. first_seen keeps the earliest known date,
// last_seen is always refreshed, and total_flights only ever grows.
func refreshTracking(stored *catalogs.AircraftRecord, incoming catalogs.Tracking, detectedAt time.Time) {
	if !incoming.FirstSeen.IsZero() &&
		(stored.Tracking.FirstSeen.IsZero() || incoming.FirstSeen.Before(stored.Tracking.FirstSeen)) {
		stored.Tracking.FirstSeen = incoming.FirstSeen
	}
	if stored.Tracking.FirstSeen.IsZero() {
		stored.Tracking.FirstSeen = detectedAt
	}

	lastSeen := incoming.LastSeen
	if lastSeen.IsZero() {
		lastSeen = detectedAt
	}
	if lastSeen.After(stored.Tracking.LastSeen) {
		stored.Tracking.LastSeen = lastSeen
	}

	if incoming.TotalFlights > stored.Tracking.TotalFlights {
		stored.Tracking.TotalFlights = incoming.TotalFlights
	}
}
