// Package differ computes the set of changed leaf fields between two
// canonical aircraft records. Fields are compared and emitted in the
// fixed canonical order declared by catalogs.FieldOrder, so two runs
// over identical inputs produce identical change sequences. The history
// log and tracking fields are never diffed.
package differ

import (
	"strconv"

	"github.com/planequery/fleetsync/pkg/catalogs"
)

// FieldChange is one changed leaf field. A nil Old means the field was
// previously absent; a nil New means it was cleared. Values are the
// canonical string forms, so semantically equal values of different
// source encodings never register as a change.
type FieldChange struct {
	Path string
	Old  *string
	New  *string
}

// Diff compares two canonical records field by field. A nil existing
// record means the incoming record is new, in which case every set
// field is reported as a change from absent. Diffing a record against
// itself always yields an empty result.
func Diff(existing, incoming *catalogs.AircraftRecord) []FieldChange {
	var old catalogs.AircraftRecord
	if existing != nil {
		old = *existing
	}
	d := &diff{}

	d.str("icao24", old.ICAO24, incoming.ICAO24)
	d.str("aircraft_type.manufacturer", old.Type.Manufacturer, incoming.Type.Manufacturer)
	d.str("aircraft_type.model", old.Type.Model, incoming.Type.Model)
	d.str("aircraft_type.variant", old.Type.Variant, incoming.Type.Variant)
	d.str("operator.subfleet", old.Operator.Subfleet, incoming.Operator.Subfleet)
	d.str("operator.crew_code", old.Operator.CrewCode, incoming.Operator.CrewCode)
	d.optStr("cabin.physical_configuration", old.Cabin.PhysicalConfiguration, incoming.Cabin.PhysicalConfiguration)
	d.num("cabin.total_seats", old.Cabin.TotalSeats, incoming.Cabin.TotalSeats)
	d.num("cabin.classes.first", old.Cabin.Classes.First, incoming.Cabin.Classes.First)
	d.num("cabin.classes.business", old.Cabin.Classes.Business, incoming.Cabin.Classes.Business)
	d.num("cabin.classes.premium_economy", old.Cabin.Classes.PremiumEconomy, incoming.Cabin.Classes.PremiumEconomy)
	d.num("cabin.classes.economy", old.Cabin.Classes.Economy, incoming.Cabin.Classes.Economy)
	d.flag("cabin.freighter", old.Cabin.Freighter, incoming.Cabin.Freighter)
	d.str("connectivity.wifi", old.Connectivity.WiFi.String(), incoming.Connectivity.WiFi.String())
	d.str("connectivity.provider", old.Connectivity.Provider, incoming.Connectivity.Provider)
	d.flag("connectivity.satellite", old.Connectivity.Satellite, incoming.Connectivity.Satellite)
	d.flag("connectivity.live_tv", old.Connectivity.LiveTV, incoming.Connectivity.LiveTV)
	d.flag("connectivity.power", old.Connectivity.Power, incoming.Connectivity.Power)
	d.flag("connectivity.usb", old.Connectivity.USB, incoming.Connectivity.USB)
	d.str("ife.type", old.IFE.Type.String(), incoming.IFE.Type.String())
	d.flag("ife.personal_screens", old.IFE.PersonalScreens, incoming.IFE.PersonalScreens)
	d.str("status", old.Status.String(), incoming.Status.String())
	d.optStr("metadata.delivery_date", old.Metadata.DeliveryDate, incoming.Metadata.DeliveryDate)
	d.optStr("metadata.serial_number", old.Metadata.SerialNumber, incoming.Metadata.SerialNumber)
	d.optStr("metadata.engine_type", old.Metadata.EngineType, incoming.Metadata.EngineType)
	d.optStr("metadata.name", old.Metadata.Name, incoming.Metadata.Name)
	d.optStr("metadata.livery", old.Metadata.Livery, incoming.Metadata.Livery)
	d.optStr("metadata.comments", old.Metadata.Comments, incoming.Metadata.Comments)

	return d.changes
}

// diff accumulates changes in emission order.
type diff struct {
	changes []FieldChange
}

// str compares plain string fields. The empty string is the canonical
// form of "absent" for these, so it maps to nil.
func (d *diff) str(path, old, new string) {
	if old == new {
		return
	}
	d.changes = append(d.changes, FieldChange{Path: path, Old: optional(old), New: optional(new)})
}

// optStr compares pointer-typed optional strings, where nil and the
// empty string are distinct (unknown vs. known-empty).
func (d *diff) optStr(path string, old, new *string) {
	if old == nil && new == nil {
		return
	}
	if old != nil && new != nil && *old == *new {
		return
	}
	var o, n *string
	if old != nil {
		v := *old
		o = &v
	}
	if new != nil {
		v := *new
		n = &v
	}
	d.changes = append(d.changes, FieldChange{Path: path, Old: o, New: n})
}

// num compares integer fields after canonical coercion: zero is the
// canonical form of "absent", so 0 vs. absent is not a change.
func (d *diff) num(path string, old, new int) {
	if old == new {
		return
	}
	d.changes = append(d.changes, FieldChange{Path: path, Old: numValue(old), New: numValue(new)})
}

// flag compares boolean fields. Booleans are always present; false is a
// value, not an absence.
func (d *diff) flag(path string, old, new bool) {
	if old == new {
		return
	}
	o, n := strconv.FormatBool(old), strconv.FormatBool(new)
	d.changes = append(d.changes, FieldChange{Path: path, Old: &o, New: &n})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func numValue(v int) *string {
	if v == 0 {
		return nil
	}
	s := strconv.Itoa(v)
	return &s
}
