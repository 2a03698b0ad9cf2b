package catalogs

import "time"

// HistoryEntry records a single detected field change on an aircraft
// record. Entries are immutable once appended: a later change that
// reverts a value produces a new entry rather than touching the old one.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"` // When the change was detected, not when it occurred
	Property  string    `json:"property" yaml:"property"`   // Dot-path to the changed leaf field
	OldValue  *string   `json:"old_value" yaml:"old_value"` // nil when the field was previously absent
	NewValue  *string   `json:"new_value" yaml:"new_value"` // nil when the field was cleared
	Source    SourceID  `json:"source" yaml:"source"`       // Provenance of the change
}

// SourceID identifies the provenance of a catalog change.
type SourceID string

// String returns the string representation of a SourceID.
func (s SourceID) String() string {
	return string(s)
}

// Change provenance sources.
const (
	SourceFlightAPI   SourceID = "flight_api"   // Automated fleet/flight-tracking API sync
	SourceFAARegistry SourceID = "faa_registry" // FAA registry snapshot
	SourceCommunity   SourceID = "community"    // Community submission
	SourceManual      SourceID = "manual"       // Manual correction
)

// SourceIDs returns all valid provenance sources.
func SourceIDs() []SourceID {
	return []SourceID{SourceFlightAPI, SourceFAARegistry, SourceCommunity, SourceManual}
}
