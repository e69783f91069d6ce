package chipdb

import "strings"

type ChipRecord struct {
	ID          uint32
	FlashSizeKB uint32
	SectorSize  uint32
	Name        string
}

// Lookup returns the first record whose id matches.
func Lookup(id uint32) (ChipRecord, bool) {
	for _, m := range chips {
		if m.ID == id {
			return m, true
		}
	}
	return ChipRecord{}, false
}

// ByName finds a record by its part name, ignoring case.
func ByName(name string) (ChipRecord, bool) {
	for _, m := range chips {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return ChipRecord{}, false
}

// All returns a copy of the table in its original order.
func All() []ChipRecord {
	result := make([]ChipRecord, len(chips))
	copy(result, chips[:])
	return result
}
