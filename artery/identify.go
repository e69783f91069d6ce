package artery

import (
	"github.com/golang/glog"
	"github.com/juju/errors"

	"github.com/BertoldVdb/atflash/chipdb"
	"github.com/BertoldVdb/atflash/target"
)

// Source tells where the sector size of an Identity came from.
type Source int

const (
	SourceDatabase Source = iota
	SourceSizeMismatch
	SourceUnknownChip
)

func (s Source) String() string {
	switch s {
	case SourceDatabase:
		return "database"
	case SourceSizeMismatch:
		return "guessed (size mismatch)"
	case SourceUnknownChip:
		return "guessed (unknown chip)"
	}
	return "invalid"
}

type Identity struct {
	DeviceID    uint32
	FlashSizeKB uint32
	SectorSize  uint32
	Source      Source

	// Chip is nil for parts missing from the chip table
	Chip *chipdb.ChipRecord
}

func readDeviceID(t target.Reader) (uint32, error) {
	id, err := t.ReadU32(RegDeviceID)
	if err != nil {
		return 0, errors.Annotatef(err, "cannot read device ID at 0x%08x", RegDeviceID)
	}
	return id, nil
}

func readFlashSize(t target.Reader) (uint32, error) {
	kb, err := t.ReadU16(RegFlashSize)
	if err != nil {
		return 0, errors.Annotatef(ErrorFlashSizeUnavailable, "register 0x%08x: %v", RegFlashSize, err)
	}
	if kb == flashSizeAbsent || kb == flashSizeBlank {
		return 0, errors.Annotatef(ErrorFlashSizeUnavailable, "register 0x%08x holds 0x%04x", RegFlashSize, kb)
	}
	return uint32(kb), nil
}

// Identify reads the device id and flash size and decides on a sector
// size. The chip table is trusted only when its flash size agrees with the
// one the part reports.
func Identify(t target.Reader) (Identity, error) {
	deviceID, err := readDeviceID(t)
	if err != nil {
		return Identity{}, err
	}

	kb, err := readFlashSize(t)
	if err != nil {
		return Identity{}, err
	}

	id := Identity{
		DeviceID:    deviceID,
		FlashSizeKB: kb,
	}

	chip, ok := chipdb.Lookup(deviceID)
	switch {
	case ok && chip.FlashSizeKB == kb:
		id.Chip = &chip
		id.SectorSize = chip.SectorSize
		id.Source = SourceDatabase
		glog.Infof("Chip: %s, %dkB FLASH, %d bytes sectors", chip.Name, kb, id.SectorSize)

	case ok:
		id.Chip = &chip
		id.SectorSize = chipdb.GuessSectorSize(kb)
		id.Source = SourceSizeMismatch
		glog.Warningf("Chip: %s, %dkB FLASH expected, but %dkB detected. Guessing %d bytes sectors",
			chip.Name, chip.FlashSizeKB, kb, id.SectorSize)

	default:
		id.SectorSize = chipdb.GuessSectorSize(kb)
		id.Source = SourceUnknownChip
		glog.Warningf("Unknown chip id: 0x%08x, %dkB FLASH detected. Guessing %d bytes sectors",
			deviceID, kb, id.SectorSize)
	}

	return id, nil
}

// UniqueID reads the 96 bit factory programmed serial number.
func UniqueID(t target.Reader) ([12]byte, error) {
	var uid [12]byte
	if _, err := t.ReadMemory(RegUniqueID, uid[:]); err != nil {
		return uid, errors.Annotatef(err, "cannot read unique ID at 0x%08x", RegUniqueID)
	}
	return uid, nil
}
