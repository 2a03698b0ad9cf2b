package catalogs

import (
	"strings"
	"time"
)

// AircraftRecord represents a single airframe in an airline catalog.
type AircraftRecord struct {
	// Core identity
	Registration  string `json:"registration" yaml:"registration"`                          // Canonical tail number, separators stripped
	ICAO24        string `json:"icao24,omitempty" yaml:"icao24,omitempty"`                  // 24-bit transponder address, lowercase hex
	SchemaVersion string `json:"schema_version,omitempty" yaml:"schema_version,omitempty"` // Schema version the record was produced under

	// Nested groups
	Type         AircraftType `json:"aircraft_type" yaml:"aircraft_type"`
	Operator     Operator     `json:"operator" yaml:"operator"`
	Cabin        Cabin        `json:"cabin" yaml:"cabin"`
	Connectivity Connectivity `json:"connectivity" yaml:"connectivity"`
	IFE          IFE          `json:"ife" yaml:"ife"`

	// Operational status
	Status Status `json:"status,omitempty" yaml:"status,omitempty"`

	// Sighting and utilization data
	Tracking Tracking `json:"tracking" yaml:"tracking"`

	// Free-form metadata, all optional
	Metadata Metadata `json:"metadata" yaml:"metadata"`

	// Ordered change log, append-only. Never diffed against itself.
	History []HistoryEntry `json:"history" yaml:"history"`
}

// AircraftType identifies the airframe model.
type AircraftType struct {
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"` // e.g. "Boeing"
	Model        string `json:"model,omitempty" yaml:"model,omitempty"`               // e.g. "737-800"
	Variant      string `json:"variant,omitempty" yaml:"variant,omitempty"`           // ICAO type designator, e.g. "B738"
}

// Operator holds airline-internal fleet assignment codes.
type Operator struct {
	Subfleet string `json:"subfleet,omitempty" yaml:"subfleet,omitempty"`
	CrewCode string `json:"crew_code,omitempty" yaml:"crew_code,omitempty"`
}

// Cabin describes the seating configuration.
// Classes and TotalSeats are always derived from PhysicalConfiguration by
// the cabin parser, never set independently of it. A nil
// PhysicalConfiguration means the layout is unknown, which is distinct
// from an empty string (known to have no seat map, e.g. freighters).
type Cabin struct {
	PhysicalConfiguration *string     `json:"physical_configuration" yaml:"physical_configuration"` // Raw config string, e.g. "P004J058W028Y206"
	TotalSeats            int         `json:"total_seats" yaml:"total_seats"`
	Classes               ClassCounts `json:"classes" yaml:"classes"`
	Freighter             bool        `json:"freighter" yaml:"freighter"`
}

// ClassCounts breaks seats down by canonical cabin class.
type ClassCounts struct {
	First          int `json:"first" yaml:"first"`
	Business       int `json:"business" yaml:"business"`
	PremiumEconomy int `json:"premium_economy" yaml:"premium_economy"`
	Economy        int `json:"economy" yaml:"economy"`
}

// Sum returns the total of all class counts.
func (c ClassCounts) Sum() int {
	return c.First + c.Business + c.PremiumEconomy + c.Economy
}

// Connectivity describes onboard passenger connectivity.
type Connectivity struct {
	WiFi      WiFiTier `json:"wifi,omitempty" yaml:"wifi,omitempty"`
	Provider  string   `json:"provider,omitempty" yaml:"provider,omitempty"` // Canonical provider name
	Satellite bool     `json:"satellite" yaml:"satellite"`
	LiveTV    bool     `json:"live_tv" yaml:"live_tv"`
	Power     bool     `json:"power" yaml:"power"`
	USB       bool     `json:"usb" yaml:"usb"`
}

// IFE describes the in-flight entertainment installation.
type IFE struct {
	Type            IFEType `json:"type,omitempty" yaml:"type,omitempty"`
	PersonalScreens bool    `json:"personal_screens" yaml:"personal_screens"`
}

// Tracking carries sighting dates and cumulative utilization.
// Tracking fields are maintained directly by the reconciler and are
// excluded from field diffing, so they never generate history entries.
type Tracking struct {
	FirstSeen    time.Time `json:"first_seen" yaml:"first_seen"`
	LastSeen     time.Time `json:"last_seen" yaml:"last_seen"`
	TotalFlights int       `json:"total_flights" yaml:"total_flights"` // Cumulative, never decreases
}

// Metadata holds free-form airframe details. All fields are optional;
// nil means unknown rather than empty.
type Metadata struct {
	DeliveryDate *string `json:"delivery_date,omitempty" yaml:"delivery_date,omitempty"` // YYYY-MM-DD
	SerialNumber *string `json:"serial_number,omitempty" yaml:"serial_number,omitempty"` // Manufacturer serial number
	EngineType   *string `json:"engine_type,omitempty" yaml:"engine_type,omitempty"`
	Name         *string `json:"name,omitempty" yaml:"name,omitempty"` // Aircraft name, if christened
	Livery       *string `json:"livery,omitempty" yaml:"livery,omitempty"`
	Comments     *string `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// Status represents the operational status of an airframe.
type Status string

// String returns the string representation of a Status.
func (s Status) String() string {
	return string(s)
}

// Aircraft statuses. A record is only ever marked retired by an explicit
// signal in source data or a manual correction, never inferred from a
// registration missing from a snapshot.
const (
	StatusActive  Status = "active"   // In revenue service
	StatusStored  Status = "stored"   // Parked/stored, not flying
	StatusRetired Status = "retired"  // Permanently withdrawn
	StatusOnOrder Status = "on_order" // Ordered but not yet delivered
)

// Statuses returns all valid aircraft statuses.
func Statuses() []Status {
	return []Status{StatusActive, StatusStored, StatusRetired, StatusOnOrder}
}

// WiFiTier classifies onboard WiFi capability.
type WiFiTier string

// String returns the string representation of a WiFiTier.
func (t WiFiTier) String() string {
	return string(t)
}

// WiFi tiers.
const (
	WiFiNone      WiFiTier = "none"       // No WiFi installed
	WiFiLowSpeed  WiFiTier = "low-speed"  // Air-to-ground or legacy satellite
	WiFiHighSpeed WiFiTier = "high-speed" // Modern satellite (Ka/Ku band, LEO)
)

// WiFiTiers returns all valid WiFi tiers.
func WiFiTiers() []WiFiTier {
	return []WiFiTier{WiFiNone, WiFiLowSpeed, WiFiHighSpeed}
}

// IFEType classifies the in-flight entertainment system.
type IFEType string

// String returns the string representation of an IFEType.
func (t IFEType) String() string {
	return string(t)
}

// IFE types.
const (
	IFENone      IFEType = "none"      // No IFE installed
	IFEOverhead  IFEType = "overhead"  // Shared overhead monitors
	IFESeatback  IFEType = "seatback"  // Personal seatback screens
	IFEStreaming IFEType = "streaming" // Streaming to passenger devices
)

// IFETypes returns all valid IFE types.
func IFETypes() []IFEType {
	return []IFEType{IFENone, IFEOverhead, IFESeatback, IFEStreaming}
}

// CanonicalRegistration normalizes a tail number to its canonical form:
// uppercase with separators stripped.
func CanonicalRegistration(registration string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(registration)) {
		switch r {
		case '-', ' ', '.', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
