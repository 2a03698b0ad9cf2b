package reconcile

import (
	"github.com/planequery/fleetsync/pkg/catalogs"
)

// carryForward fills the unknown parts of an incoming record from the
// stored one before diffing, so that a source with no knowledge of a
// group never reads as clearing it. Unknown is the zero value: an empty
// string for scalar identity fields, a nil raw configuration for the
// cabin group, an empty tier for connectivity, a nil pointer for
// metadata fields. A source that knows a field to be empty reports an
// explicit empty value and still produces a clear.
func carryForward(stored, incoming *catalogs.AircraftRecord) {
	if incoming.ICAO24 == "" {
		incoming.ICAO24 = stored.ICAO24
	}
	if incoming.Type.Manufacturer == "" {
		incoming.Type.Manufacturer = stored.Type.Manufacturer
	}
	if incoming.Type.Model == "" {
		incoming.Type.Model = stored.Type.Model
	}
	if incoming.Type.Variant == "" {
		incoming.Type.Variant = stored.Type.Variant
	}
	if incoming.Operator.Subfleet == "" {
		incoming.Operator.Subfleet = stored.Operator.Subfleet
	}
	if incoming.Operator.CrewCode == "" {
		incoming.Operator.CrewCode = stored.Operator.CrewCode
	}

	if incoming.Cabin.PhysicalConfiguration == nil {
		freighter := incoming.Cabin.Freighter || stored.Cabin.Freighter
		incoming.Cabin = stored.Cabin
		incoming.Cabin.Freighter = freighter
		if stored.Cabin.PhysicalConfiguration != nil {
			raw := *stored.Cabin.PhysicalConfiguration
			incoming.Cabin.PhysicalConfiguration = &raw
		}
	}

	if incoming.Connectivity.WiFi == "" {
		incoming.Connectivity = stored.Connectivity
	} else if incoming.Connectivity.Provider == "" {
		// Provider identity is never guessed from tier alone; keep the
		// stored name until a source names a replacement.
		incoming.Connectivity.Provider = stored.Connectivity.Provider
	}

	if incoming.IFE.Type == "" {
		incoming.IFE = stored.IFE
	}

	if incoming.Status == "" {
		incoming.Status = stored.Status
	}

	if incoming.Metadata.DeliveryDate == nil {
		incoming.Metadata.DeliveryDate = stored.Metadata.DeliveryDate
	}
	if incoming.Metadata.SerialNumber == nil {
		incoming.Metadata.SerialNumber = stored.Metadata.SerialNumber
	}
	if incoming.Metadata.EngineType == nil {
		incoming.Metadata.EngineType = stored.Metadata.EngineType
	}
	if incoming.Metadata.Name == nil {
		incoming.Metadata.Name = stored.Metadata.Name
	}
	if incoming.Metadata.Livery == nil {
		incoming.Metadata.Livery = stored.Metadata.Livery
	}
	if incoming.Metadata.Comments == nil {
		incoming.Metadata.Comments = stored.Metadata.Comments
	}
}

// applyIncoming writes the incoming record's diffable groups onto the
// stored record. History and tracking are owned by the reconciler and
// left alone here.
func applyIncoming(stored, incoming *catalogs.AircraftRecord) {
	stored.ICAO24 = incoming.ICAO24
	stored.Type = incoming.Type
	stored.Operator = incoming.Operator
	stored.Cabin = incoming.Cabin
	stored.Connectivity = incoming.Connectivity
	stored.IFE = incoming.IFE
	stored.Status = incoming.Status
	stored.Metadata = incoming.Metadata
	if incoming.SchemaVersion != "" {
		stored.SchemaVersion = incoming.SchemaVersion
	}
}
