package reconcile

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planequery/fleetsync/pkg/catalogs"
)

// Rejection records a snapshot entry excluded from the merge, with the
// validation reasons.
type Rejection struct {
	Registration string   `json:"registration" yaml:"registration"` // As reported by the source, may be empty
	Reasons      []string `json:"reasons" yaml:"reasons"`
}

// Warning is a non-fatal data-quality note attached to one record.
type Warning struct {
	Registration string `json:"registration" yaml:"registration"`
	Message      string `json:"message" yaml:"message"`
}

// NewEntry pairs a history entry appended during the run with the
// record it belongs to.
type NewEntry struct {
	Registration string                `json:"registration" yaml:"registration"`
	Entry        catalogs.HistoryEntry `json:"entry" yaml:"entry"`
}

// Report summarizes one reconciliation run: per-record outcomes, every
// history entry the run appended, and the warnings it collected. The
// caller uses it to decide whether a persisted write is warranted.
type Report struct {
	RunID      string            `json:"run_id" yaml:"run_id"`
	Source     catalogs.SourceID `json:"source" yaml:"source"`
	DetectedAt time.Time         `json:"detected_at" yaml:"detected_at"`

	Inserted  int `json:"inserted" yaml:"inserted"`
	Updated   int `json:"updated" yaml:"updated"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Rejected  int `json:"rejected" yaml:"rejected"`

	Rejections []Rejection `json:"rejections,omitempty" yaml:"rejections,omitempty"`
	Warnings   []Warning   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Entries    []NewEntry  `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// newReport creates a report for one run with a fresh run ID.
func newReport(source catalogs.SourceID, detectedAt time.Time) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		Source:     source,
		DetectedAt: detectedAt,
	}
}

// reject records a rejected snapshot entry.
func (r *Report) reject(registration string, reasons []string) {
	r.Rejected++
	r.Rejections = append(r.Rejections, Rejection{Registration: registration, Reasons: reasons})
}

// warn attaches data-quality warnings to a record.
func (r *Report) warn(registration string, messages ...string) {
	for _, msg := range messages {
		r.Warnings = append(r.Warnings, Warning{Registration: registration, Message: msg})
	}
}

// record appends the run's new history entries for one record.
func (r *Report) record(registration string, entries []catalogs.HistoryEntry) {
	for _, entry := range entries {
		r.Entries = append(r.Entries, NewEntry{Registration: registration, Entry: entry})
	}
}

// HasChanges reports whether the run changed the catalog at all, which
// is what decides whether the caller should persist and commit.
func (r *Report) HasChanges() bool {
	return r.Inserted > 0 || r.Updated > 0
}

// Summary returns a one-line human-readable summary of the run.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d inserted, %d updated, %d unchanged, %d rejected, %d history entries",
		r.Inserted, r.Updated, r.Unchanged, r.Rejected, len(r.Entries))
}
