// Package fleetsync maintains versioned per-airline aircraft catalogs.
// Each sync reconciles a point-in-time fleet snapshot against the
// stored catalog, records field-level changes as provenance-tagged
// history entries, and persists the updated catalog document.
package fleetsync

import (
	"context"
	"fmt"
	"sync"

	"github.com/planequery/fleetsync/internal/flightapi"
	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/reconcile"
)

// Fleetsync manages stored airline catalogs and syncs them against
// fleet snapshots.
type Fleetsync interface {
	// Catalog returns the stored catalog for an airline code.
	Catalog(airline string) (*catalogs.AirlineCatalog, error)

	// Airlines returns the airline codes with stored catalogs.
	Airlines() ([]string, error)

	// Sync reconciles a fleet snapshot into an airline's catalog. See
	// sync.go for the run semantics.
	Sync(ctx context.Context, airline string, opts ...SyncOption) (*reconcile.Report, error)

	// OnAircraftAdded registers a callback for newly cataloged aircraft.
	OnAircraftAdded(AircraftAddedHook)

	// OnAircraftUpdated registers a callback for aircraft whose records
	// changed during a sync.
	OnAircraftUpdated(AircraftUpdatedHook)
}

// AircraftAddedHook is called once per aircraft inserted by a sync.
type AircraftAddedHook func(registration string)

// AircraftUpdatedHook is called once per updated aircraft with the
// history entries the sync appended.
type AircraftUpdatedHook func(registration string, entries []catalogs.HistoryEntry)

// fleetsync is the internal implementation of the Fleetsync interface.
type fleetsync struct {
	mu         sync.Mutex // serializes syncs: single writer per store
	config     *config
	store      *catalogs.Store
	client     *flightapi.Client
	reconciler *reconcile.Reconciler

	hooks *hooks
}

// New creates a Fleetsync instance with the given options.
func New(opts ...Option) (Fleetsync, error) {
	fs := &fleetsync{
		config: newConfig(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(fs.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	fs.store = catalogs.NewStore(fs.config.catalogDir)

	clientOpts := []flightapi.Option{flightapi.WithBaseURL(fs.config.baseURL)}
	if fs.config.httpClient != nil {
		clientOpts = append(clientOpts, flightapi.WithHTTPClient(fs.config.httpClient))
	}
	fs.client = flightapi.New(fs.config.apiKey, clientOpts...)

	fs.reconciler = fs.config.reconciler
	if fs.reconciler == nil {
		fs.reconciler = reconcile.New()
	}

	return fs, nil
}

// Catalog returns the stored catalog for an airline code.
func (f *fleetsync) Catalog(airline string) (*catalogs.AirlineCatalog, error) {
	return f.store.Load(airline)
}

// Airlines returns the airline codes with stored catalogs.
func (f *fleetsync) Airlines() ([]string, error) {
	return f.store.List()
}

// loadExisting loads the stored catalog, treating a missing document as
// a first run.
func (f *fleetsync) loadExisting(airline string) (*catalogs.AirlineCatalog, error) {
	existing, err := f.store.Load(airline)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}
