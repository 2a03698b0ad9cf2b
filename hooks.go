package fleetsync

import (
	"sync"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/reconcile"
)

// hooks holds registered event callbacks.
type hooks struct {
	mu      sync.RWMutex
	added   []AircraftAddedHook
	updated []AircraftUpdatedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnAircraftAdded registers a callback for newly cataloged aircraft.
func (f *fleetsync) OnAircraftAdded(hook AircraftAddedHook) {
	f.hooks.mu.Lock()
	defer f.hooks.mu.Unlock()
	f.hooks.added = append(f.hooks.added, hook)
}

// OnAircraftUpdated registers a callback for updated aircraft records.
func (f *fleetsync) OnAircraftUpdated(hook AircraftUpdatedHook) {
	f.hooks.mu.Lock()
	defer f.hooks.mu.Unlock()
	f.hooks.updated = append(f.hooks.updated, hook)
}

// fire invokes the registered hooks for one sync's outcomes. Inserted
// registrations come from the catalog diff between runs; updates carry
// the history entries the run appended, grouped per record.
func (h *hooks) fire(before, after *catalogs.AirlineCatalog, report *reconcile.Report) {
	h.mu.RLock()
	added := h.added
	updated := h.updated
	h.mu.RUnlock()

	if len(added) > 0 && report.Inserted > 0 {
		for _, registration := range after.Registrations() {
			if before != nil && before.Get(registration) != nil {
				continue
			}
			for _, hook := range added {
				hook(registration)
			}
		}
	}

	if len(updated) > 0 && len(report.Entries) > 0 {
		byRecord := make(map[string][]catalogs.HistoryEntry)
		var order []string
		for _, entry := range report.Entries {
			if _, seen := byRecord[entry.Registration]; !seen {
				order = append(order, entry.Registration)
			}
			byRecord[entry.Registration] = append(byRecord[entry.Registration], entry.Entry)
		}
		for _, registration := range order {
			for _, hook := range updated {
				hook(registration, byRecord[registration])
			}
		}
	}
}
