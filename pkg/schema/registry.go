// Package schema validates canonical aircraft records against the
// catalog schema: required identifiers, closed enum value sets, and
// derived-field consistency. A Registry instance is bound to exactly one
// schema version; it is read-only after construction and safe to share
// across concurrent reconciliation runs.
package schema

import (
	"fmt"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/errors"
)

// Violation describes a single schema violation: the offending field
// path and the reason it was flagged.
type Violation struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

func (v Violation) String() string {
	return v.Path + ": " + v.Reason
}

// ValidationResult collects the outcome of validating one record.
// Violations mark the record invalid; Warnings are data-quality notes
// that do not block a merge.
type ValidationResult struct {
	Violations []Violation
	Warnings   []Violation
}

// Valid reports whether the record passed validation.
func (r ValidationResult) Valid() bool {
	return len(r.Violations) == 0
}

// Registry validates records against one schema version.
type Registry struct {
	version string
}

// New creates a registry bound to the current schema version.
func New() *Registry {
	return &Registry{version: catalogs.SchemaVersion}
}

// NewWithVersion creates a registry bound to a specific schema version.
func NewWithVersion(version string) *Registry {
	return &Registry{version: version}
}

// Version returns the schema version this registry is bound to.
func (reg *Registry) Version() string {
	return reg.version
}

// CheckVersion reports whether a record-declared schema version is
// compatible with this registry. An empty version means current. The
// returned error wraps errors.ErrSchemaVersionMismatch.
func (reg *Registry) CheckVersion(version string) error {
	if version == "" || version == reg.version {
		return nil
	}
	return fmt.Errorf("incompatible schema version %q, registry is bound to %q: %w",
		version, reg.version, errors.ErrSchemaVersionMismatch)
}

// Validate checks a canonical record against the schema. Missing
// optional fields are recoverable and never flagged; the record is
// invalid only when it lacks a registration identifier, carries an
// incompatible schema version, or holds a status/WiFi/IFE value outside
// the closed enums. A class-count sum that disagrees with total_seats is
// a warning, not a violation.
func (reg *Registry) Validate(record *catalogs.AircraftRecord) ValidationResult {
	var res ValidationResult

	if catalogs.CanonicalRegistration(record.Registration) == "" {
		res.Violations = append(res.Violations, Violation{
			Path:   "registration",
			Reason: "missing registration identifier",
		})
	}

	if err := reg.CheckVersion(record.SchemaVersion); err != nil {
		res.Violations = append(res.Violations, Violation{
			Path:   "schema_version",
			Reason: err.Error(),
		})
	}

	if record.Status != "" && !validStatus(record.Status) {
		res.Violations = append(res.Violations, Violation{
			Path:   "status",
			Reason: fmt.Sprintf("unknown status %q", record.Status),
		})
	}

	if record.Connectivity.WiFi != "" && !validWiFiTier(record.Connectivity.WiFi) {
		res.Violations = append(res.Violations, Violation{
			Path:   "connectivity.wifi",
			Reason: fmt.Sprintf("unknown WiFi tier %q", record.Connectivity.WiFi),
		})
	}

	if record.IFE.Type != "" && !validIFEType(record.IFE.Type) {
		res.Violations = append(res.Violations, Violation{
			Path:   "ife.type",
			Reason: fmt.Sprintf("unknown IFE type %q", record.IFE.Type),
		})
	}

	if !validICAO24(record.ICAO24) {
		res.Warnings = append(res.Warnings, Violation{
			Path:   "icao24",
			Reason: fmt.Sprintf("%q is not a 6-digit hex transponder address", record.ICAO24),
		})
	}

	if record.Cabin.PhysicalConfiguration != nil && record.Cabin.TotalSeats > 0 {
		if sum := record.Cabin.Classes.Sum(); sum != record.Cabin.TotalSeats {
			res.Warnings = append(res.Warnings, Violation{
				Path:   "cabin.total_seats",
				Reason: fmt.Sprintf("class counts sum to %d but total_seats is %d", sum, record.Cabin.TotalSeats),
			})
		}
	}

	return res
}

func validStatus(s catalogs.Status) bool {
	for _, v := range catalogs.Statuses() {
		if s == v {
			return true
		}
	}
	return false
}

func validWiFiTier(t catalogs.WiFiTier) bool {
	for _, v := range catalogs.WiFiTiers() {
		if t == v {
			return true
		}
	}
	return false
}

func validIFEType(t catalogs.IFEType) bool {
	for _, v := range catalogs.IFETypes() {
		if t == v {
			return true
		}
	}
	return false
}

func validICAO24(hex string) bool {
	if hex == "" {
		return true // Optional
	}
	if len(hex) != 6 {
		return false
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
