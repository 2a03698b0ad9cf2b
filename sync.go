package fleetsync

import (
	"context"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/logging"
	"github.com/planequery/fleetsync/pkg/reconcile"
	"github.com/planequery/fleetsync/pkg/sources"
)

// SyncOption configures a single sync run.
type SyncOption func(*syncOptions)

type syncOptions struct {
	source   catalogs.SourceID
	snapshot *sources.Snapshot
	dryRun   bool
}

// WithSource tags the run's history entries with a provenance source.
// The default is the fleet API.
func WithSource(source catalogs.SourceID) SyncOption {
	return func(o *syncOptions) {
		if source != "" {
			o.source = source
		}
	}
}

// WithSnapshot supplies the snapshot directly instead of fetching it
// from the fleet API, e.g. from a registry export or a community
// submission file.
func WithSnapshot(snapshot *sources.Snapshot) SyncOption {
	return func(o *syncOptions) {
		o.snapshot = snapshot
	}
}

// WithDryRun reconciles and reports without persisting the result.
func WithDryRun(enabled bool) SyncOption {
	return func(o *syncOptions) {
		o.dryRun = enabled
	}
}

// Sync reconciles a fleet snapshot into an airline's catalog and
// persists the updated document when the run produced changes. The
// snapshot comes from the fleet API unless one is supplied via
// WithSnapshot. A failed run leaves the stored document untouched.
func (f *fleetsync) Sync(ctx context.Context, airline string, opts ...SyncOption) (*reconcile.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := &syncOptions{source: catalogs.SourceFlightAPI}
	for _, opt := range opts {
		opt(options)
	}

	ctx = logging.WithAirline(ctx, airline)
	ctx = logging.WithSource(ctx, options.source.String())
	log := logging.Ctx(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	existing, err := f.loadExisting(airline)
	if err != nil {
		return nil, err
	}

	snapshot := options.snapshot
	if snapshot == nil {
		snapshot, err = f.client.FetchFleet(ctx, airline)
		if err != nil {
			return nil, err
		}
	}
	if snapshot.Airline == "" {
		snapshot.Airline = airline
	}

	updated, report, err := f.reconciler.Reconcile(existing, snapshot, options.source)
	if err != nil {
		return nil, err
	}

	if options.dryRun {
		log.Info().Msg("Dry run, catalog not persisted")
		return report, nil
	}
	if !report.HasChanges() && existing != nil {
		log.Debug().Msg("No changes, catalog left as-is")
		return report, nil
	}

	if err := f.store.Save(updated); err != nil {
		return nil, err
	}

	// Hooks only see durably applied changes.
	f.hooks.fire(existing, updated, report)
	return report, nil
}
