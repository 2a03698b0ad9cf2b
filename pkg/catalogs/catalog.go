// Package catalogs defines the canonical schema for per-airline aircraft
// catalogs: the catalog document, aircraft records, their closed enum
// value sets, and the embedded per-record change history.
//
// A catalog is created empty for a new airline and mutated exclusively
// through the reconciler's merge operation. Records are keyed by
// canonical registration, kept in first-seen order, and never deleted;
// absence from a later snapshot is not evidence of retirement.
package catalogs

import (
	"time"

	"github.com/planequery/fleetsync/pkg/errors"
)

// SchemaVersion is the catalog schema version this package defines.
const SchemaVersion = "v1"

// Airline identifies the carrier a catalog belongs to.
type Airline struct {
	IATA    string `json:"iata" yaml:"iata"`
	ICAO    string `json:"icao,omitempty" yaml:"icao,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// Code returns the preferred lookup code for the airline, IATA first.
func (a Airline) Code() string {
	if a.IATA != "" {
		return a.IATA
	}
	return a.ICAO
}

// AirlineCatalog is the persisted catalog document for one airline.
// Record order is first-seen order and stays stable across updates.
// Registrations are unique within a catalog.
type AirlineCatalog struct {
	Airline       Airline          `json:"airline" yaml:"airline"`
	SchemaVersion string           `json:"schema_version" yaml:"schema_version"`
	GeneratedAt   time.Time        `json:"generated_at" yaml:"generated_at"`
	Aircraft      []AircraftRecord `json:"aircraft" yaml:"aircraft"`
}

// New creates an empty catalog for the given airline.
func New(airline Airline) *AirlineCatalog {
	return &AirlineCatalog{
		Airline:       airline,
		SchemaVersion: SchemaVersion,
		Aircraft:      []AircraftRecord{},
	}
}

// Len returns the number of aircraft records in the catalog.
func (c *AirlineCatalog) Len() int {
	return len(c.Aircraft)
}

// Get returns a pointer to the record with the given registration, or
// nil if the catalog has no such record. The registration is
// canonicalized before lookup.
func (c *AirlineCatalog) Get(registration string) *AircraftRecord {
	reg := CanonicalRegistration(registration)
	for i := range c.Aircraft {
		if c.Aircraft[i].Registration == reg {
			return &c.Aircraft[i]
		}
	}
	return nil
}

// Add appends a new record to the catalog, preserving first-seen order.
// It fails if a record with the same canonical registration already
// exists, keeping registrations unique within the catalog.
func (c *AirlineCatalog) Add(record AircraftRecord) error {
	record.Registration = CanonicalRegistration(record.Registration)
	if record.Registration == "" {
		return errors.NewValidationError("registration", record.Registration, "must not be empty")
	}
	if c.Get(record.Registration) != nil {
		return errors.ErrAlreadyExists
	}
	c.Aircraft = append(c.Aircraft, record)
	return nil
}

// Registrations returns the catalog's registrations in record order.
func (c *AirlineCatalog) Registrations() []string {
	regs := make([]string, len(c.Aircraft))
	for i := range c.Aircraft {
		regs[i] = c.Aircraft[i].Registration
	}
	return regs
}
