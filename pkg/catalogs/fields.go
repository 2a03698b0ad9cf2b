package catalogs

// FieldOrder is the canonical ordering of diffable leaf fields. The
// differ emits changes in exactly this order so that two runs over
// identical inputs produce byte-identical history additions.
//
// Registration is the record key and is not diffable. Tracking fields
// and the history log are maintained outside the differ.
var FieldOrder = []string{
	"icao24",
	"aircraft_type.manufacturer",
	"aircraft_type.model",
	"aircraft_type.variant",
	"operator.subfleet",
	"operator.crew_code",
	"cabin.physical_configuration",
	"cabin.total_seats",
	"cabin.classes.first",
	"cabin.classes.business",
	"cabin.classes.premium_economy",
	"cabin.classes.economy",
	"cabin.freighter",
	"connectivity.wifi",
	"connectivity.provider",
	"connectivity.satellite",
	"connectivity.live_tv",
	"connectivity.power",
	"connectivity.usb",
	"ife.type",
	"ife.personal_screens",
	"status",
	"metadata.delivery_date",
	"metadata.serial_number",
	"metadata.engine_type",
	"metadata.name",
	"metadata.livery",
	"metadata.comments",
}
