package catalogs

// DeepCopy creates a deep copy of a catalog, including every record's
// history slice and pointer-typed optional fields. The reconciler
// mutates a copy so a failed run never leaves the stored catalog
// partially merged.
func (c *AirlineCatalog) DeepCopy() *AirlineCatalog {
	if c == nil {
		return nil
	}
	out := *c
	out.Aircraft = make([]AircraftRecord, len(c.Aircraft))
	for i := range c.Aircraft {
		out.Aircraft[i] = DeepCopyRecord(c.Aircraft[i])
	}
	return &out
}

// DeepCopyRecord creates a deep copy of an aircraft record.
func DeepCopyRecord(record AircraftRecord) AircraftRecord {
	out := record
	out.Cabin.PhysicalConfiguration = copyString(record.Cabin.PhysicalConfiguration)
	out.Metadata = Metadata{
		DeliveryDate: copyString(record.Metadata.DeliveryDate),
		SerialNumber: copyString(record.Metadata.SerialNumber),
		EngineType:   copyString(record.Metadata.EngineType),
		Name:         copyString(record.Metadata.Name),
		Livery:       copyString(record.Metadata.Livery),
		Comments:     copyString(record.Metadata.Comments),
	}
	if record.History != nil {
		out.History = make([]HistoryEntry, len(record.History))
		for i, entry := range record.History {
			entry.OldValue = copyString(entry.OldValue)
			entry.NewValue = copyString(entry.NewValue)
			out.History[i] = entry
		}
	}
	return out
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
