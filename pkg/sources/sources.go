// Package sources defines the source-native fleet snapshot format
// handed in by upstream fetch collaborators, and its conversion into
// canonical aircraft records. The core only requires each entry to
// carry an identifiable registration; every other sub-field is optional
// and arrives in source-native encodings (raw cabin configuration
// strings, WiFi capability flag pairs, free-form provider names).
package sources

import (
	"encoding/json"
	"io"

	"github.com/planequery/fleetsync/pkg/errors"
)

// Record is one aircraft entry as reported by an external source.
// Nested groups are pointers: a nil group means the source has no data
// for it, which is distinct from a group of zero values.
type Record struct {
	Registration  string `json:"registration"`
	ICAO24        string `json:"icao24,omitempty"`
	SchemaVersion string `json:"schema_version,omitempty"`

	Manufacturer string `json:"manufacturer,omitempty"`
	Model        string `json:"model,omitempty"`
	Variant      string `json:"variant,omitempty"`

	Subfleet string `json:"subfleet,omitempty"`
	CrewCode string `json:"crew_code,omitempty"`

	// Raw seating configuration, e.g. "P004J058W028Y206". A nil value
	// means the source does not know the layout; an empty string means
	// the source reports no seat map (freighters).
	CabinConfig *string `json:"cabin_config,omitempty"`
	Freighter   bool    `json:"freighter,omitempty"`

	Connectivity *Connectivity `json:"connectivity,omitempty"`
	IFE          *IFE          `json:"ife,omitempty"`

	Status string `json:"status,omitempty"`

	FirstSeen    string `json:"first_seen,omitempty"` // YYYY-MM-DD
	LastSeen     string `json:"last_seen,omitempty"`  // YYYY-MM-DD
	TotalFlights int    `json:"total_flights,omitempty"`

	DeliveryDate *string `json:"delivery_date,omitempty"`
	SerialNumber *string `json:"serial_number,omitempty"`
	EngineType   *string `json:"engine_type,omitempty"`
	Name         *string `json:"name,omitempty"`
	Livery       *string `json:"livery,omitempty"`
	Comments     *string `json:"comments,omitempty"`
}

// Connectivity carries a source's connectivity flags in their native
// boolean-pair encoding.
type Connectivity struct {
	NoWiFi        bool   `json:"no_wifi,omitempty"`
	HighSpeedWiFi bool   `json:"high_speed_wifi,omitempty"`
	Provider      string `json:"provider,omitempty"`
	Satellite     bool   `json:"satellite,omitempty"`
	LiveTV        bool   `json:"live_tv,omitempty"`
	Power         bool   `json:"power,omitempty"`
	USB           bool   `json:"usb,omitempty"`
}

// IFE carries a source's in-flight entertainment details.
type IFE struct {
	Type            string `json:"type,omitempty"`
	PersonalScreens bool   `json:"personal_screens,omitempty"`
}

// Snapshot is a full point-in-time fleet listing from one source,
// passed into a single reconciliation run. Record order is preserved.
type Snapshot struct {
	Airline string   `json:"airline,omitempty"` // IATA/ICAO code, when the source reports it
	Records []Record `json:"records"`
}

// Decode reads a snapshot from JSON. Both the wrapped document form
// ({"airline": ..., "records": [...]}) and a bare record array are
// accepted. A structurally unparsable payload is a top-level failure.
func Decode(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "snapshot", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes parses a snapshot from raw JSON bytes.
func DecodeBytes(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err == nil && snap.Records != nil {
		return &snap, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.WrapParse("json", "snapshot", err)
	}
	return &Snapshot{Records: records}, nil
}
