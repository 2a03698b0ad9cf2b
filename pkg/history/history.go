// Package history turns detected field diffs into ordered,
// provenance-tagged history entries. Entries are appended in
// diff-detection order and are never mutated or removed once written; a
// later revert appends a new entry rather than rewriting an old one.
package history

import (
	"time"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/differ"
)

// Entries converts field changes into history entries, stamped with the
// reconciliation run's detection timestamp and provenance source. The
// entries preserve the changes' order.
func Entries(changes []differ.FieldChange, detectedAt time.Time, source catalogs.SourceID) []catalogs.HistoryEntry {
	if len(changes) == 0 {
		return nil
	}
	entries := make([]catalogs.HistoryEntry, len(changes))
	for i, change := range changes {
		entries[i] = catalogs.HistoryEntry{
			Timestamp: detectedAt,
			Property:  change.Path,
			OldValue:  change.Old,
			NewValue:  change.New,
			Source:    source,
		}
	}
	return entries
}

// Append merges the changes into a record's history log and returns the
// entries it appended. The record's existing entries are never touched.
func Append(record *catalogs.AircraftRecord, changes []differ.FieldChange, detectedAt time.Time, source catalogs.SourceID) []catalogs.HistoryEntry {
	entries := Entries(changes, detectedAt, source)
	record.History = append(record.History, entries...)
	return entries
}
